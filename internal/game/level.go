package game

import (
	"fmt"
	"maps"

	"fpinteract/internal/components"
	"fpinteract/internal/config"
	"fpinteract/internal/door"
	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pixil98/go-errors"
)

type pickupDef struct {
	item  string
	pos   rl.Vector3
	color rl.Color
}

type doorDef struct {
	name  string
	pos   rl.Vector3
	color rl.Color
	props engine.Props
}

var demoPickups = []pickupDef{
	{item: "Key", pos: rl.Vector3{X: -3, Y: 0.5, Z: 2}, color: rl.Gold},
	{item: "Potion", pos: rl.Vector3{X: 3, Y: 0.5, Z: 2}, color: rl.Magenta},
	{item: "Lantern", pos: rl.Vector3{X: 0, Y: 0.5, Z: 3}, color: rl.Orange},
}

var demoDoors = []doorDef{
	{
		name:  "CellarDoor",
		pos:   rl.Vector3{X: -1, Y: 0, Z: -3},
		color: rl.Brown,
		props: engine.Props{
			"requiresItem":  true,
			"requiredItem":  "Key",
			"consumeItem":   true,
			"lockedMessage": "You need a key...",
			"openSound":     "assets/sounds/door_open.wav",
			"closeSound":    "assets/sounds/door_close.wav",
			"lockedSound":   "assets/sounds/door_locked.wav",
		},
	},
	{
		name:  "ShedDoor",
		pos:   rl.Vector3{X: 5, Y: 0, Z: -3},
		color: rl.Beige,
		props: engine.Props{
			"startOpen":  true,
			"openSound":  "assets/sounds/door_open.wav",
			"closeSound": "assets/sounds/door_close.wav",
		},
	},
}

const (
	doorWidth  = 2
	doorHeight = 2.5
	doorDepth  = 0.2
)

func (s *Session) createLevel() error {
	el := errors.NewErrorList()

	for _, def := range demoPickups {
		el.Add(s.createPickup(def))
	}
	for _, def := range demoDoors {
		el.Add(s.createDoor(def))
	}
	el.Add(s.createBarrel(rl.Vector3{X: -5, Y: 0.6, Z: 0}))

	for _, g := range s.World.Scene.GameObjects {
		if d := engine.GetComponent[*door.Door](g); d != nil {
			d.OnLocked.AddListener(func(message string) {
				s.Prompt.Notify(message, float32(s.settings.NoticeDisplayDuration().Seconds()))
			})
		}
	}

	return el.Err()
}

func (s *Session) createPickup(def pickupDef) error {
	g := engine.NewGameObject(def.item)
	g.Tags = []string{"pickup"}
	g.Transform.Position = def.pos

	size := rl.Vector3{X: 0.4, Y: 0.4, Z: 0.4}
	g.AddComponent(components.NewMeshRenderer(components.MeshCube, def.color, size))

	prompt, err := s.prompt(s.settings.Prompts.Pickup, def.item)
	if err != nil {
		return err
	}

	return s.spawn(g, []scriptDef{
		{name: "BoxCollider", props: engine.Props{"sizeX": 0.6, "sizeY": 0.6, "sizeZ": 0.6}},
		{name: "Rotator", props: engine.Props{"speed": 60.0}},
		{name: "Interactable", props: engine.Props{
			"prompt":  prompt,
			"item":    def.item,
			"actions": []string{"pickup"},
		}},
	})
}

// createDoor hinges the door at pos; the panel extends along +X when closed.
func (s *Session) createDoor(def doorDef) error {
	g := engine.NewGameObject(def.name)
	g.Tags = []string{"door"}
	g.Transform.Position = def.pos

	panel := components.NewMeshRenderer(components.MeshCube, def.color, rl.Vector3{X: doorWidth, Y: doorHeight, Z: doorDepth})
	panel.Pivot = rl.Vector3{X: doorWidth / 2, Y: doorHeight / 2}
	g.AddComponent(panel)

	props := maps.Clone(def.props)
	for key, text := range map[string]string{
		"promptWhenClosed":       s.settings.Prompts.DoorOpen,
		"promptWhenOpen":         s.settings.Prompts.DoorClose,
		"promptAfterInteraction": s.settings.Prompts.DoorUsed,
	} {
		prompt, err := s.prompt(text, "")
		if err != nil {
			return err
		}
		props[key] = prompt
	}
	props["promptDuration"] = s.settings.PromptDisplayDuration().Seconds()

	return s.spawn(g, []scriptDef{
		{name: "BoxCollider", props: engine.Props{
			"sizeX": float64(doorWidth), "sizeY": doorHeight, "sizeZ": 0.4,
			"offsetX": float64(doorWidth) / 2, "offsetY": doorHeight / 2,
		}},
		{name: "DoorAnimator", props: engine.Props{"openAngle": 90.0}},
		{name: "Interactable", props: engine.Props{"actions": []string{"toggleGate"}}},
		{name: "Door", props: props},
	})
}

func (s *Session) createBarrel(pos rl.Vector3) error {
	g := engine.NewGameObject("Barrel")
	g.Transform.Position = pos

	size := rl.Vector3{X: 0.8, Y: 1.2, Z: 0.8}
	g.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.DarkBrown, size))

	prompt, err := s.prompt(s.settings.Prompts.Smash, "")
	if err != nil {
		return err
	}

	return s.spawn(g, []scriptDef{
		{name: "BoxCollider", props: engine.Props{"sizeX": 0.8, "sizeY": 1.2, "sizeZ": 0.8}},
		{name: "Interactable", props: engine.Props{
			"prompt":  prompt,
			"actions": []string{"destroy"},
		}},
	})
}

func (s *Session) prompt(text, item string) (string, error) {
	prompt, err := config.ExpandPrompt(text, s.settings.PromptData(item))
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", text, err)
	}
	return prompt, nil
}
