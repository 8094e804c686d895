package components

import (
	"fpinteract/internal/engine"
	"fpinteract/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider makes its object a ray target.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// Bounds returns the collider box in world space, scaled by the object's
// world scale.
func (b *BoxCollider) Bounds() physics.AABB {
	g := b.GetGameObject()
	if g == nil {
		return physics.NewAABBFromCenter(b.Offset, b.Size)
	}
	scale := g.WorldScale()
	center := rl.Vector3Add(g.WorldPosition(), rl.Vector3Multiply(b.Offset, scale))
	return physics.NewAABBFromCenter(center, rl.Vector3Multiply(b.Size, scale))
}
