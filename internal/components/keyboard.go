package components

import (
	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultBindings maps each action to the keys that trigger it.
func DefaultBindings() map[engine.InputAction][]int32 {
	return map[engine.InputAction][]int32{
		engine.ActionToggleInventory: {rl.KeyTab},
		engine.ActionNextItem:        {rl.KeyE},
		engine.ActionPreviousItem:    {rl.KeyQ},
		engine.ActionInteract:        {rl.KeyF},
	}
}

// Keyboard turns key presses into action edges once per tick.
type Keyboard struct {
	Bindings map[engine.InputAction][]int32

	state     *engine.InputState
	isPressed func(key int32) bool
}

func NewKeyboard(bindings map[engine.InputAction][]int32) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Keyboard{
		Bindings:  bindings,
		state:     engine.NewInputState(),
		isPressed: rl.IsKeyPressed,
	}
}

// Poll refreshes the action edges from the device. Call once at the start of a
// tick.
func (k *Keyboard) Poll() {
	k.state.Reset()
	for action, keys := range k.Bindings {
		for _, key := range keys {
			if k.isPressed(key) {
				k.state.Press(action)
				break
			}
		}
	}
}

func (k *Keyboard) Pressed(action engine.InputAction) bool {
	return k.state.Pressed(action)
}
