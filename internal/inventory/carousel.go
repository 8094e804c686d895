package inventory

import (
	"fmt"
	"log/slog"

	"fpinteract/internal/engine"
)

// Display draws carousel views. Render is called on every change while the
// inventory is open and once when it closes.
type Display interface {
	Render(v View)
}

// Carousel is the component that drives an Inventory from player input.
type Carousel struct {
	engine.BaseComponent

	Inventory *Inventory
	Input     engine.Input
	Display   Display

	listener engine.ListenerID
}

func NewCarousel(inv *Inventory, input engine.Input, display Display) *Carousel {
	return &Carousel{Inventory: inv, Input: input, Display: display}
}

func (c *Carousel) Start() {
	if err := c.validate(); err != nil {
		slog.Error("carousel disabled", "object", c.ObjectName(), "error", err)
		c.SetEnabled(false)
		return
	}
	c.listener = c.Inventory.OnChanged.AddListener(c.Display.Render)
	c.Display.Render(c.Inventory.View())
}

func (c *Carousel) validate() error {
	switch {
	case c.Inventory == nil:
		return fmt.Errorf("carousel inventory: %w", engine.ErrDependencyUnavailable)
	case c.Input == nil:
		return fmt.Errorf("carousel input: %w", engine.ErrDependencyUnavailable)
	case c.Display == nil:
		return fmt.Errorf("carousel display: %w", engine.ErrDependencyUnavailable)
	}
	return nil
}

// Update toggles the display and, while it is open, cycles the selection.
func (c *Carousel) Update(deltaTime float32) {
	if c.Input.Pressed(engine.ActionToggleInventory) {
		c.Inventory.ToggleOpen()
	}
	if !c.Inventory.IsOpen() || c.Inventory.Len() <= 1 {
		return
	}
	if c.Input.Pressed(engine.ActionNextItem) {
		c.Inventory.SelectNext()
	} else if c.Input.Pressed(engine.ActionPreviousItem) {
		c.Inventory.SelectPrevious()
	}
}

// Detach stops forwarding inventory changes to the display.
func (c *Carousel) Detach() {
	if c.Inventory != nil {
		c.Inventory.OnChanged.RemoveListener(c.listener)
	}
}
