package inventory

import "fpinteract/internal/items"

// View is what the carousel shows: the selected item flanked by its
// neighbours. Previous and Next are only set with more than one item.
type View struct {
	Open     bool
	Count    int
	Previous *items.Item
	Current  *items.Item
	Next     *items.Item
}

func (v View) Empty() bool {
	return v.Count == 0
}

// View projects the inventory for display.
func (inv *Inventory) View() View {
	v := View{Open: inv.open, Count: len(inv.items)}
	if inv.cursor == NoSelection {
		return v
	}
	n := len(inv.items)
	v.Current = inv.items[inv.cursor]
	if n > 1 {
		v.Previous = inv.items[(inv.cursor-1+n)%n]
		v.Next = inv.items[(inv.cursor+1)%n]
	}
	return v
}
