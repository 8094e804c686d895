package components

import (
	"log/slog"

	"fpinteract/internal/engine"
)

// DoorAnimator swings its object about the Y axis between a closed and an open
// angle. Triggers start a swing; Play jumps to a named state.
type DoorAnimator struct {
	engine.BaseComponent

	OpenTrigger  string
	CloseTrigger string
	OpenState    string
	ClosedState  string
	OpenAngle    float32
	ClosedAngle  float32
	// Speed is in degrees per second.
	Speed float32

	target float32
	state  string
}

func NewDoorAnimator() *DoorAnimator {
	return &DoorAnimator{
		OpenTrigger:  "Open",
		CloseTrigger: "Close",
		OpenState:    "Door_Open",
		ClosedState:  "Door_Close",
		OpenAngle:    90,
		ClosedAngle:  0,
		Speed:        180,
	}
}

// BindStates replaces the trigger and state names. Empty names keep the
// current ones.
func (a *DoorAnimator) BindStates(openTrigger, closeTrigger, openState, closedState string) {
	for dst, name := range map[*string]string{
		&a.OpenTrigger:  openTrigger,
		&a.CloseTrigger: closeTrigger,
		&a.OpenState:    openState,
		&a.ClosedState:  closedState,
	} {
		if name != "" {
			*dst = name
		}
	}
}

func (a *DoorAnimator) SetTrigger(name string) {
	switch name {
	case a.OpenTrigger:
		a.target = a.OpenAngle
		a.state = a.OpenState
	case a.CloseTrigger:
		a.target = a.ClosedAngle
		a.state = a.ClosedState
	default:
		slog.Warn("unknown animator trigger", "object", a.ObjectName(), "trigger", name)
	}
}

// Play sets the named state. With atEnd the door snaps to the state's angle;
// otherwise it swings there.
func (a *DoorAnimator) Play(state string, atEnd bool) {
	switch state {
	case a.OpenState:
		a.target = a.OpenAngle
	case a.ClosedState:
		a.target = a.ClosedAngle
	default:
		slog.Warn("unknown animator state", "object", a.ObjectName(), "state", state)
		return
	}
	a.state = state
	if g := a.GetGameObject(); atEnd && g != nil {
		g.Transform.Rotation.Y = a.target
	}
}

// State returns the last state played or triggered.
func (a *DoorAnimator) State() string {
	return a.state
}

// Settled reports whether the swing has reached its target.
func (a *DoorAnimator) Settled() bool {
	g := a.GetGameObject()
	return g == nil || g.Transform.Rotation.Y == a.target
}

func (a *DoorAnimator) Update(deltaTime float32) {
	g := a.GetGameObject()
	if g == nil {
		return
	}
	current := g.Transform.Rotation.Y
	step := a.Speed * deltaTime
	switch {
	case current < a.target:
		g.Transform.Rotation.Y = min(current+step, a.target)
	case current > a.target:
		g.Transform.Rotation.Y = max(current-step, a.target)
	}
}
