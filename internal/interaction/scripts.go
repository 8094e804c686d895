package interaction

import (
	"fmt"

	"fpinteract/internal/engine"
	"fpinteract/internal/items"

	"github.com/pixil98/go-errors"
)

func init() {
	engine.RegisterScript("Interactable", interactableFactory, interactableSerializer)
}

// interactableFactory builds an Interactable from props:
//
//	prompt  string   focus prompt
//	item    string   catalog item name for pickups
//	actions []string pickup, destroy, toggleGate
//
// The inventory and catalog come from the script env.
func interactableFactory(env *engine.ScriptEnv, props engine.Props) (engine.Component, error) {
	el := errors.NewErrorList()

	i := NewInteractable(props.String("prompt", "[F] Interact"))
	if inv, ok := engine.Service[Collector](env); ok {
		i.Inventory = inv
	}

	if name := props.String("item", ""); name != "" {
		catalog, ok := engine.Service[*items.Catalog](env)
		switch {
		case !ok:
			el.Add(fmt.Errorf("item catalog: %w", engine.ErrDependencyUnavailable))
		case catalog.Get(name) == nil:
			el.Add(fmt.Errorf("item %q is not in the catalog", name))
		default:
			i.Item = catalog.Get(name)
		}
	}

	for _, name := range props.Strings("actions") {
		kind, ok := parseActionKind(name)
		if !ok || kind == ActionCustom {
			el.Add(fmt.Errorf("action %q is not configurable", name))
			continue
		}
		i.Actions = append(i.Actions, Action{Kind: kind})
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return i, nil
}

func interactableSerializer(c engine.Component) engine.Props {
	i, ok := c.(*Interactable)
	if !ok {
		return nil
	}
	actions := make([]string, 0, len(i.Actions))
	for _, a := range i.Actions {
		if a.Kind == ActionCustom {
			continue
		}
		actions = append(actions, a.Kind.String())
	}
	props := engine.Props{
		"prompt":  i.Prompt,
		"actions": actions,
	}
	if i.Item != nil {
		props["item"] = i.Item.Name()
	}
	return props
}
