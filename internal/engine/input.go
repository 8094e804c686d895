package engine

// InputAction names a player intent polled once per tick.
type InputAction int

const (
	ActionToggleInventory InputAction = iota
	ActionNextItem
	ActionPreviousItem
	ActionInteract
)

func (a InputAction) String() string {
	switch a {
	case ActionToggleInventory:
		return "toggle-inventory"
	case ActionNextItem:
		return "next-item"
	case ActionPreviousItem:
		return "previous-item"
	case ActionInteract:
		return "interact"
	default:
		return "unknown"
	}
}

// Input reports edge-triggered actions for the current tick.
type Input interface {
	Pressed(action InputAction) bool
}

// InputState is a settable Input. Device adapters fill it once per tick.
type InputState struct {
	pressed map[InputAction]bool
}

func NewInputState() *InputState {
	return &InputState{pressed: make(map[InputAction]bool)}
}

func (s *InputState) Press(action InputAction) {
	if s.pressed == nil {
		s.pressed = make(map[InputAction]bool)
	}
	s.pressed[action] = true
}

// Reset clears every edge; call at the start of each tick.
func (s *InputState) Reset() {
	clear(s.pressed)
}

func (s *InputState) Pressed(action InputAction) bool {
	return s.pressed[action]
}
