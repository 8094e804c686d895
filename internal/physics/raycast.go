// Package physics answers ray queries against box colliders.
package physics

import (
	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bounded is implemented by colliders that occupy an axis-aligned box in world
// space.
type Bounded interface {
	Bounds() AABB
}

// Raycast returns the closest hit among objects within maxDistance. Inactive
// and destroyed objects, and objects without a Bounded component, are skipped.
func Raycast(objects []*engine.GameObject, origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, obj := range objects {
		if obj == nil || !obj.Active || obj.Destroyed() {
			continue
		}
		collider := engine.GetComponent[Bounded](obj)
		if collider == nil {
			continue
		}
		if c, ok := collider.(engine.Component); ok && !c.Enabled() {
			continue
		}

		box := collider.Bounds()
		t, ok := box.IntersectRay(origin, direction, maxDistance)
		if !ok || t > closest.Distance || (hit && t == closest.Distance) {
			continue
		}
		point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
		closest = engine.RaycastResult{
			GameObject: obj,
			Point:      point,
			Normal:     box.FaceNormal(point),
			Distance:   t,
		}
		hit = true
	}

	return closest, hit
}
