package components

import (
	"fmt"

	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("DoorAnimator", doorAnimatorFactory, doorAnimatorSerializer)
	engine.RegisterScript("BoxCollider", boxColliderFactory, boxColliderSerializer)
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

func doorAnimatorFactory(_ *engine.ScriptEnv, props engine.Props) (engine.Component, error) {
	a := NewDoorAnimator()
	a.OpenTrigger = props.String("openTrigger", a.OpenTrigger)
	a.CloseTrigger = props.String("closeTrigger", a.CloseTrigger)
	a.OpenState = props.String("openState", a.OpenState)
	a.ClosedState = props.String("closedState", a.ClosedState)
	a.OpenAngle = props.Float("openAngle", a.OpenAngle)
	a.ClosedAngle = props.Float("closedAngle", a.ClosedAngle)
	a.Speed = props.Float("speed", a.Speed)
	if a.Speed <= 0 {
		return nil, fmt.Errorf("speed must be positive, got %v", a.Speed)
	}
	return a, nil
}

func doorAnimatorSerializer(c engine.Component) engine.Props {
	a, ok := c.(*DoorAnimator)
	if !ok {
		return nil
	}
	return engine.Props{
		"openTrigger":  a.OpenTrigger,
		"closeTrigger": a.CloseTrigger,
		"openState":    a.OpenState,
		"closedState":  a.ClosedState,
		"openAngle":    a.OpenAngle,
		"closedAngle":  a.ClosedAngle,
		"speed":        a.Speed,
	}
}

func boxColliderFactory(_ *engine.ScriptEnv, props engine.Props) (engine.Component, error) {
	b := NewBoxCollider(rl.Vector3{
		X: props.Float("sizeX", 1),
		Y: props.Float("sizeY", 1),
		Z: props.Float("sizeZ", 1),
	})
	b.Offset = rl.Vector3{
		X: props.Float("offsetX", 0),
		Y: props.Float("offsetY", 0),
		Z: props.Float("offsetZ", 0),
	}
	return b, nil
}

func boxColliderSerializer(c engine.Component) engine.Props {
	b, ok := c.(*BoxCollider)
	if !ok {
		return nil
	}
	return engine.Props{
		"sizeX":   b.Size.X,
		"sizeY":   b.Size.Y,
		"sizeZ":   b.Size.Z,
		"offsetX": b.Offset.X,
		"offsetY": b.Offset.Y,
		"offsetZ": b.Offset.Z,
	}
}

// Rotator spins an object around the Y axis. Pickups use it to stand out.
type Rotator struct {
	engine.BaseComponent
	Speed float32
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += r.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}

func rotatorFactory(_ *engine.ScriptEnv, props engine.Props) (engine.Component, error) {
	return &Rotator{Speed: props.Float("speed", 90)}, nil
}

func rotatorSerializer(c engine.Component) engine.Props {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return engine.Props{
		"speed": r.Speed,
	}
}
