package components

import (
	"strings"

	"fpinteract/internal/assets"
	"fpinteract/internal/inventory"
	"fpinteract/internal/items"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/muesli/reflow/wordwrap"
)

// CarouselView draws the inventory carousel: the selected item in the middle
// with its neighbours smaller and faded on either side.
type CarouselView struct {
	SlotSize  float32
	SideScale float32
	SideAlpha float32
	Title     string
	// WrapWidth is the description line length in characters.
	WrapWidth int
	Assets    *assets.Cache

	view inventory.View
}

func NewCarouselView(cache *assets.Cache) *CarouselView {
	return &CarouselView{
		SlotSize:  96,
		SideScale: 0.7,
		SideAlpha: 0.5,
		Title:     "Inventory",
		WrapWidth: 36,
		Assets:    cache,
	}
}

// Render stores the latest view; Draw shows it.
func (c *CarouselView) Render(v inventory.View) {
	c.view = v
}

func (c *CarouselView) View() inventory.View {
	return c.view
}

func (c *CarouselView) Draw() {
	if !c.view.Open {
		return
	}
	screenW := float32(rl.GetScreenWidth())
	panel := rl.Rectangle{
		X:      (screenW - c.SlotSize*4) / 2,
		Y:      40,
		Width:  c.SlotSize * 4,
		Height: c.SlotSize + 120,
	}
	gui.Panel(panel, c.Title)

	if c.view.Empty() {
		gui.Label(rl.Rectangle{X: panel.X + 16, Y: panel.Y + 40, Width: panel.Width - 32, Height: 24}, "Nothing carried")
		return
	}

	centerX := panel.X + panel.Width/2
	slotY := panel.Y + 32
	side := c.SlotSize * c.SideScale
	sideY := slotY + (c.SlotSize-side)/2
	sideTint := rl.Fade(rl.White, c.SideAlpha)

	c.drawSlot(c.view.Previous, rl.Rectangle{X: centerX - c.SlotSize/2 - side - 16, Y: sideY, Width: side, Height: side}, sideTint)
	c.drawSlot(c.view.Next, rl.Rectangle{X: centerX + c.SlotSize/2 + 16, Y: sideY, Width: side, Height: side}, sideTint)
	c.drawSlot(c.view.Current, rl.Rectangle{X: centerX - c.SlotSize/2, Y: slotY, Width: c.SlotSize, Height: c.SlotSize}, rl.White)

	gui.Label(rl.Rectangle{X: panel.X + 16, Y: slotY + c.SlotSize + 8, Width: panel.Width - 32, Height: 24},
		c.view.Current.Name())
	for i, line := range c.DescriptionLines() {
		rl.DrawText(line, int32(panel.X)+16, int32(slotY+c.SlotSize+36)+int32(i)*18, 16, rl.LightGray)
	}
}

// DescriptionLines returns the selected item's description wrapped to
// WrapWidth.
func (c *CarouselView) DescriptionLines() []string {
	if c.view.Current == nil || c.view.Current.Description() == "" {
		return nil
	}
	return strings.Split(wordwrap.String(c.view.Current.Description(), c.WrapWidth), "\n")
}

func (c *CarouselView) drawSlot(item *items.Item, rect rl.Rectangle, tint rl.Color) {
	if item == nil {
		return
	}
	if tex, ok := c.texture(item.Icon()); ok {
		src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
		rl.DrawTexturePro(tex, src, rect, rl.Vector2{}, 0, tint)
		return
	}
	rl.DrawRectangleRec(rect, rl.Fade(rl.DarkGray, float32(tint.A)/255))
	rl.DrawRectangleLinesEx(rect, 2, tint)
	rl.DrawText(item.Name(), int32(rect.X)+6, int32(rect.Y+rect.Height/2)-8, 16, tint)
}

func (c *CarouselView) texture(icon items.Icon) (rl.Texture2D, bool) {
	if c.Assets == nil {
		return rl.Texture2D{}, false
	}
	return c.Assets.Texture(string(icon))
}
