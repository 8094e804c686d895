package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult is the nearest collider hit along a ray. Distance is measured
// from the ray origin in world units.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess is what components may ask of the world they live in: what the
// player is looking at, and removing an object at the end of the tick.
type WorldAccess interface {
	// Raycast reports the nearest enabled collider within maxDistance.
	Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastResult, bool)
	// Destroy queues g for removal; it stays in the scene until the tick ends.
	Destroy(g *GameObject)
}
