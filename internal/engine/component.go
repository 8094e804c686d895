package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
	Enabled() bool
}

// LookProvider is implemented by components that own the player's view ray.
// The focus tracker casts from EyePosition along LookDirection.
type LookProvider interface {
	EyePosition() rl.Vector3
	LookDirection() rl.Vector3
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
	disabled   bool
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Enabled reports whether the component still receives updates.
func (b *BaseComponent) Enabled() bool {
	return !b.disabled
}

// SetEnabled turns per-tick updates on or off. Components switch themselves
// off when their configuration is unusable.
func (b *BaseComponent) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// ObjectName returns the owning GameObject's name, or "" when detached.
func (b *BaseComponent) ObjectName() string {
	if b.gameObject == nil {
		return ""
	}
	return b.gameObject.Name
}
