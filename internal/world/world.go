// Package world owns the scene and answers the queries components make of it.
package world

import (
	"slices"

	"fpinteract/internal/components"
	"fpinteract/internal/engine"
	"fpinteract/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 30.0

// World implements engine.WorldAccess over a single scene.
type World struct {
	Scene      *engine.Scene
	FloorColor rl.Color
}

func New() *World {
	w := &World{
		Scene:      engine.NewScene("Main"),
		FloorColor: rl.LightGray,
	}
	w.Scene.World = w
	return w
}

// Add puts g and all of its descendants into the scene.
func (w *World) Add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	for _, child := range g.Children {
		w.Add(child)
	}
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return physics.Raycast(w.Scene.GameObjects, origin, direction, maxDistance)
}

// Destroy queues g for removal when the tick ends.
func (w *World) Destroy(g *engine.GameObject) {
	w.Scene.Destroy(g)
}

func (w *World) Start() {
	w.Scene.Start()
}

// Update runs every object except skip, which the caller has already updated
// this tick.
func (w *World) Update(deltaTime float32, skip ...*engine.GameObject) {
	for _, g := range w.Scene.GameObjects {
		if slices.Contains(skip, g) {
			continue
		}
		g.Update(deltaTime)
	}
}

// EndTick removes everything destroyed during the tick.
func (w *World) EndTick() {
	w.Scene.Flush()
}

func (w *World) Draw() {
	rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: FloorSize, Y: FloorSize}, w.FloorColor)
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.MeshRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}

// GetCollidableObjects returns all GameObjects that have BoxColliders
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if collider := engine.GetComponent[*components.BoxCollider](g); collider != nil {
			result = append(result, g)
		}
	}
	return result
}
