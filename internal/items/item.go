// Package items defines the immutable item descriptors carried in the
// inventory and required by doors.
package items

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
)

// Icon is an opaque handle to an item's picture. The raylib display treats it
// as a texture path.
type Icon string

// Item describes a kind of carryable thing. Items are shared by pointer and
// never mutated after creation; two items with the same name are still
// different items.
type Item struct {
	id          uuid.UUID
	name        string
	icon        Icon
	description string
}

// New creates a standalone item outside any catalog.
func New(name string, icon Icon, description string) *Item {
	return &Item{
		id:          uuid.New(),
		name:        name,
		icon:        icon,
		description: description,
	}
}

func (i *Item) ID() uuid.UUID       { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Icon() Icon          { return i.icon }
func (i *Item) Description() string { return i.description }

func (i *Item) String() string {
	if i == nil {
		return "<none>"
	}
	return i.name
}

// Spec is the configuration form of an item.
type Spec struct {
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

func (s Spec) Validate() error {
	el := errors.NewErrorList()
	if s.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	return el.Err()
}

// Catalog mints items and looks them up by name.
type Catalog struct {
	items  []*Item
	byName map[string]*Item
}

func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*Item)}
}

// Define validates spec and adds a new item. Names are unique within a catalog.
func (c *Catalog) Define(spec Spec) (*Item, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if _, exists := c.byName[spec.Name]; exists {
		return nil, fmt.Errorf("item %q already defined", spec.Name)
	}
	item := New(spec.Name, Icon(spec.Icon), spec.Description)
	c.items = append(c.items, item)
	c.byName[spec.Name] = item
	return item, nil
}

// DefineAll defines every spec and reports all failures together.
func (c *Catalog) DefineAll(specs []Spec) error {
	el := errors.NewErrorList()
	for i, spec := range specs {
		if _, err := c.Define(spec); err != nil {
			el.Add(fmt.Errorf("item %d: %w", i, err))
		}
	}
	return el.Err()
}

// Get returns the item with the given name, or nil.
func (c *Catalog) Get(name string) *Item {
	return c.byName[name]
}

func (c *Catalog) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}
