// Package inventory holds the player's carried items and the carousel that
// displays them.
package inventory

import (
	"log/slog"
	"slices"

	"fpinteract/internal/engine"
	"fpinteract/internal/items"
)

// NoSelection is the cursor value of an empty inventory.
const NoSelection = -1

// Inventory is an ordered list of items with one selected entry. Duplicates
// are allowed. The cursor is NoSelection exactly when the list is empty.
type Inventory struct {
	items  []*items.Item
	cursor int
	open   bool

	// OnChanged fires with a fresh View whenever the open display needs redrawing.
	OnChanged engine.EventWithArg[View]
}

func New() *Inventory {
	return &Inventory{cursor: NoSelection}
}

// Add appends item. The first item added to an empty inventory becomes selected.
func (inv *Inventory) Add(item *items.Item) {
	if item == nil {
		slog.Warn("inventory: ignoring nil item")
		return
	}
	inv.items = append(inv.items, item)
	if len(inv.items) == 1 {
		inv.cursor = 0
	}
	slog.Info("inventory: item added", "item", item.Name(), "count", len(inv.items))
	inv.refresh()
}

// RemoveSelected removes the selected entry and returns it. The cursor keeps
// its position, so the entry that slides into the slot becomes selected; when
// the last entry is removed the cursor moves to the new last entry.
func (inv *Inventory) RemoveSelected() *items.Item {
	if inv.cursor == NoSelection {
		return nil
	}
	removed := inv.items[inv.cursor]
	inv.items = slices.Delete(inv.items, inv.cursor, inv.cursor+1)

	switch {
	case len(inv.items) == 0:
		inv.cursor = NoSelection
	case inv.cursor >= len(inv.items):
		inv.cursor = len(inv.items) - 1
	}
	slog.Info("inventory: item removed", "item", removed.Name(), "count", len(inv.items))
	inv.refresh()
	return removed
}

// SelectNext advances the cursor, wrapping at the end. It needs at least two items.
func (inv *Inventory) SelectNext() {
	n := len(inv.items)
	if n <= 1 {
		return
	}
	inv.cursor = (inv.cursor + 1) % n
	inv.refresh()
}

// SelectPrevious moves the cursor back, wrapping at the start.
func (inv *Inventory) SelectPrevious() {
	n := len(inv.items)
	if n <= 1 {
		return
	}
	inv.cursor = (inv.cursor - 1 + n) % n
	inv.refresh()
}

// Selected returns the item under the cursor, or nil when empty.
func (inv *Inventory) Selected() *items.Item {
	if inv.cursor < 0 || inv.cursor >= len(inv.items) {
		return nil
	}
	return inv.items[inv.cursor]
}

// ToggleOpen flips the display state. It always notifies so a closing
// display can hide itself.
func (inv *Inventory) ToggleOpen() {
	inv.open = !inv.open
	inv.OnChanged.Invoke(inv.View())
}

func (inv *Inventory) IsOpen() bool { return inv.open }
func (inv *Inventory) Len() int     { return len(inv.items) }
func (inv *Inventory) Cursor() int  { return inv.cursor }

// Items returns a copy of the carried items in order.
func (inv *Inventory) Items() []*items.Item {
	return slices.Clone(inv.items)
}

// Contains reports whether this exact item is carried.
func (inv *Inventory) Contains(item *items.Item) bool {
	return item != nil && slices.Contains(inv.items, item)
}

func (inv *Inventory) refresh() {
	if inv.open {
		inv.OnChanged.Invoke(inv.View())
	}
}
