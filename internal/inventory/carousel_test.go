package inventory

import (
	"testing"

	"fpinteract/internal/engine"
	"fpinteract/internal/items"

	"github.com/pixil98/go-testutil"
)

type recordingDisplay struct {
	views []View
}

func (d *recordingDisplay) Render(v View) {
	d.views = append(d.views, v)
}

func (d *recordingDisplay) last() View {
	return d.views[len(d.views)-1]
}

func newCarouselFixture(t *testing.T, n int) (*Carousel, *Inventory, *engine.InputState, *recordingDisplay) {
	t.Helper()
	inv := New()
	for i := 0; i < n; i++ {
		inv.Add(items.New("item", "", ""))
	}
	input := engine.NewInputState()
	display := &recordingDisplay{}
	c := NewCarousel(inv, input, display)
	obj := engine.NewGameObject("Inventory")
	obj.AddComponent(c)
	obj.Start()
	return c, inv, input, display
}

func tick(obj *engine.GameObject, input *engine.InputState, actions ...engine.InputAction) {
	input.Reset()
	for _, a := range actions {
		input.Press(a)
	}
	obj.Update(0.016)
}

func TestCarouselStartRendersHidden(t *testing.T) {
	_, _, _, display := newCarouselFixture(t, 1)

	testutil.AssertEqual(t, "renders", len(display.views), 1)
	testutil.AssertEqual(t, "open", display.last().Open, false)
}

func TestCarouselNavigationRequiresOpen(t *testing.T) {
	c, inv, input, display := newCarouselFixture(t, 3)
	obj := c.GetGameObject()

	tick(obj, input, engine.ActionNextItem)
	testutil.AssertEqual(t, "closed cursor", inv.Cursor(), 0)

	tick(obj, input, engine.ActionToggleInventory)
	testutil.AssertEqual(t, "open", inv.IsOpen(), true)

	tick(obj, input, engine.ActionNextItem)
	testutil.AssertEqual(t, "after next", inv.Cursor(), 1)

	tick(obj, input, engine.ActionPreviousItem)
	tick(obj, input, engine.ActionPreviousItem)
	testutil.AssertEqual(t, "after two previous", inv.Cursor(), 2)

	tick(obj, input, engine.ActionNextItem, engine.ActionPreviousItem)
	testutil.AssertEqual(t, "next wins", inv.Cursor(), 0)

	testutil.AssertEqual(t, "display open", display.last().Open, true)
	testutil.AssertEqual(t, "display current", display.last().Current, inv.Selected())
}

func TestCarouselToggleAndNavigateSameTick(t *testing.T) {
	c, inv, input, _ := newCarouselFixture(t, 2)

	tick(c.GetGameObject(), input, engine.ActionToggleInventory, engine.ActionNextItem)

	testutil.AssertEqual(t, "cursor", inv.Cursor(), 1)
}

func TestCarouselMissingDisplayDisables(t *testing.T) {
	c := NewCarousel(New(), engine.NewInputState(), nil)
	obj := engine.NewGameObject("Inventory")
	obj.AddComponent(c)

	obj.Start()

	testutil.AssertEqual(t, "enabled", c.Enabled(), false)
	obj.Update(0.016) // must not panic on the nil display
}

func TestCarouselDetach(t *testing.T) {
	c, inv, _, display := newCarouselFixture(t, 1)

	c.Detach()
	inv.ToggleOpen()

	testutil.AssertEqual(t, "renders", len(display.views), 1)
}
