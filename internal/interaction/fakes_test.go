package interaction

import (
	"fpinteract/internal/engine"
	"fpinteract/internal/items"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeWorld returns whatever object the test aims at.
type fakeWorld struct {
	target    *engine.GameObject
	casts     int
	lastDist  float32
	destroyed []*engine.GameObject
	scene     *engine.Scene
}

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	w.casts++
	w.lastDist = maxDistance
	if w.target == nil {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{GameObject: w.target, Distance: 1}, true
}

func (w *fakeWorld) Destroy(g *engine.GameObject) {
	w.destroyed = append(w.destroyed, g)
	if w.scene != nil {
		w.scene.Destroy(g)
	}
}

type fakeLook struct {
	engine.BaseComponent
}

func (fakeLook) EyePosition() rl.Vector3   { return rl.Vector3{Y: 1.7} }
func (fakeLook) LookDirection() rl.Vector3 { return rl.Vector3{Z: 1} }

type promptCall struct {
	kind string
	text string
}

type fakePrompt struct {
	calls []promptCall
}

func (p *fakePrompt) ShowPrompt(text string) { p.calls = append(p.calls, promptCall{"show", text}) }
func (p *fakePrompt) HidePrompt()            { p.calls = append(p.calls, promptCall{"hide", ""}) }
func (p *fakePrompt) SetText(text string)    { p.calls = append(p.calls, promptCall{"set", text}) }

func (p *fakePrompt) count(kind string) int {
	n := 0
	for _, c := range p.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}



type fakeGate struct {
	engine.BaseComponent
	toggles int
	err     error
}

func (g *fakeGate) AttemptToggle() error {
	g.toggles++
	return g.err
}

type recordingCollector struct {
	added []*items.Item
}

func (c *recordingCollector) Add(item *items.Item) {
	c.added = append(c.added, item)
}
