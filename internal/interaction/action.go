package interaction

// ActionKind tags what an Action does when its interactable is used.
type ActionKind int

const (
	// ActionPickup adds the attached item to the inventory and destroys the object.
	ActionPickup ActionKind = iota
	// ActionDestroySelf removes the object from the scene.
	ActionDestroySelf
	// ActionToggleGate toggles a gate, by default the one on the same object.
	ActionToggleGate
	// ActionCustom runs an arbitrary callback.
	ActionCustom
)

func (k ActionKind) String() string {
	switch k {
	case ActionPickup:
		return "pickup"
	case ActionDestroySelf:
		return "destroy"
	case ActionToggleGate:
		return "toggleGate"
	case ActionCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Toggler is a two-state object such as a door.
type Toggler interface {
	AttemptToggle() error
}

// Action is one step run by Interactable.Interact.
type Action struct {
	Kind ActionKind
	Gate Toggler
	Run  func() error
}

func Pickup() Action      { return Action{Kind: ActionPickup} }
func DestroySelf() Action { return Action{Kind: ActionDestroySelf} }

// ToggleGate targets gate, or the Toggler on the interactable's own object
// when gate is nil.
func ToggleGate(gate Toggler) Action {
	return Action{Kind: ActionToggleGate, Gate: gate}
}

func Custom(run func() error) Action {
	return Action{Kind: ActionCustom, Run: run}
}

func parseActionKind(name string) (ActionKind, bool) {
	for k := ActionPickup; k <= ActionCustom; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
