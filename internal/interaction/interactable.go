// Package interaction implements look-at-and-use objects and the focus
// tracker that finds them.
package interaction

import (
	"errors"
	"fmt"
	"log/slog"

	"fpinteract/internal/engine"
	"fpinteract/internal/items"
)

// Collector receives picked-up items.
type Collector interface {
	Add(item *items.Item)
}

// Interactable marks an object the player can aim at and use.
type Interactable struct {
	engine.BaseComponent

	// Prompt is shown while the object is focused.
	Prompt  string
	Actions []Action
	// Item is attached to pickups; nil for everything else.
	Item      *items.Item
	Inventory Collector

	// OnInteract fires after the actions have run.
	OnInteract engine.Event

	spent bool
}

func NewInteractable(prompt string, actions ...Action) *Interactable {
	return &Interactable{Prompt: prompt, Actions: actions}
}

// SetPrompt replaces the focus prompt. Doors use it to reflect their state.
func (i *Interactable) SetPrompt(text string) {
	i.Prompt = text
}

// Available reports whether the object can still be focused and used.
func (i *Interactable) Available() bool {
	if i.spent || !i.Enabled() {
		return false
	}
	g := i.GetGameObject()
	return g == nil || (g.Active && !g.Destroyed())
}

// Interact runs every action in order. A failing action is logged and does not
// stop the ones after it; the failures are returned joined.
func (i *Interactable) Interact() error {
	if !i.Available() {
		return nil
	}
	slog.Info("interacted", "object", i.ObjectName())

	var errs []error
	for _, a := range i.Actions {
		if err := i.run(a); err != nil {
			slog.Warn("interaction action failed", "object", i.ObjectName(), "action", a.Kind.String(), "error", err)
			errs = append(errs, err)
		}
	}
	i.OnInteract.Invoke()
	return errors.Join(errs...)
}

func (i *Interactable) run(a Action) error {
	switch a.Kind {
	case ActionPickup:
		return i.PickupAndDestroy()
	case ActionDestroySelf:
		return i.destroy()
	case ActionToggleGate:
		gate := a.Gate
		if gate == nil {
			gate = engine.GetComponent[Toggler](i.GetGameObject())
		}
		if gate == nil {
			return fmt.Errorf("no gate on %q: %w", i.ObjectName(), engine.ErrDependencyUnavailable)
		}
		return gate.AttemptToggle()
	case ActionCustom:
		if a.Run == nil {
			return nil
		}
		return a.Run()
	}
	return fmt.Errorf("unknown action kind %d", a.Kind)
}

// PickupAndDestroy moves the attached item into the inventory and removes the
// object so it cannot be used again. Without an item the object is left intact.
func (i *Interactable) PickupAndDestroy() error {
	if i.Item == nil {
		err := fmt.Errorf("pickup %q: %w", i.ObjectName(), engine.ErrMissingItemData)
		slog.Warn("pickup has no item data", "object", i.ObjectName())
		return err
	}
	if i.Inventory == nil {
		return fmt.Errorf("pickup %q inventory: %w", i.ObjectName(), engine.ErrDependencyUnavailable)
	}
	i.Inventory.Add(i.Item)
	return i.destroy()
}

func (i *Interactable) destroy() error {
	i.spent = true
	g := i.GetGameObject()
	if g == nil {
		return nil
	}
	if g.Scene == nil {
		g.Active = false
		return nil
	}
	if g.Scene.World != nil {
		g.Scene.World.Destroy(g)
		return nil
	}
	g.Scene.Destroy(g)
	return nil
}
