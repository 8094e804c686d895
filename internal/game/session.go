package game

import (
	"fmt"
	"log/slog"

	"fpinteract/internal/assets"
	"fpinteract/internal/components"
	"fpinteract/internal/config"
	"fpinteract/internal/engine"
	"fpinteract/internal/interaction"
	"fpinteract/internal/inventory"
	"fpinteract/internal/items"
	"fpinteract/internal/world"

	"github.com/pixil98/go-errors"
)

// Session is one play-through: the scene, the player and the shared services
// the interaction components draw on.
type Session struct {
	World     *world.World
	Player    *engine.GameObject
	Inventory *inventory.Inventory
	Catalog   *items.Catalog
	Scheduler *engine.Scheduler
	Assets    *assets.Cache

	Controller *components.FPSController
	Focus      *interaction.FocusTracker
	Prompt     *components.PromptLabel
	Carousel   *components.CarouselView
	Sounds     *components.SoundPlayer

	settings *config.Settings
	env      *engine.ScriptEnv
}

// NewSession builds the demo level from settings and starts it. input is
// polled by the player's components every tick.
func NewSession(settings *config.Settings, input engine.Input) (*Session, error) {
	cache := assets.NewCache()
	s := &Session{
		World:     world.New(),
		Inventory: inventory.New(),
		Catalog:   items.NewCatalog(),
		Scheduler: engine.NewScheduler(),
		Assets:    cache,
		Prompt:    components.NewPromptLabel(),
		Carousel:  components.NewCarouselView(cache),
		Sounds:    components.NewSoundPlayer(cache),
		settings:  settings,
	}
	if err := s.Catalog.DefineAll(settings.Items); err != nil {
		return nil, fmt.Errorf("item catalog: %w", err)
	}
	s.env = engine.NewScriptEnv(s.Inventory, s.Catalog, s.Scheduler, s.Sounds)

	s.createPlayer(input)
	hud := engine.NewGameObject("HUD")
	hud.AddComponent(s.Prompt)
	s.World.Add(hud)

	if err := s.createLevel(); err != nil {
		return nil, err
	}

	s.World.Start()
	slog.Info("session started", "objects", len(s.World.Scene.GameObjects), "items", len(s.Catalog.Items()))
	return s, nil
}

func (s *Session) createPlayer(input engine.Input) {
	s.Player = engine.NewGameObject("Player")
	s.Player.Tags = []string{"player"}
	s.Player.Transform.Position.Z = 6

	s.Controller = components.NewFPSController()
	s.Player.AddComponent(s.Controller)

	s.Focus = interaction.NewFocusTracker(s.Prompt, input)
	s.Focus.InteractionDistance = s.settings.InteractionDistance
	s.Player.AddComponent(s.Focus)

	s.Player.AddComponent(inventory.NewCarousel(s.Inventory, input, s.Carousel))

	s.World.Add(s.Player)
}

// Tick advances the session by one frame. The player's components run first,
// so focus and the carousel see this frame's look direction; timers fire and
// destroyed objects leave the scene after every component has run.
func (s *Session) Tick(deltaTime float32) {
	s.Player.Update(deltaTime)
	s.World.Update(deltaTime, s.Player)
	s.Scheduler.Advance(deltaTime)
	s.World.EndTick()
}

// spawn builds an object from script definitions. Script errors are
// collected so one bad definition reports every problem at once. Object names
// are unique within a session.
func (s *Session) spawn(g *engine.GameObject, scripts []scriptDef) error {
	if s.World.Scene.FindByName(g.Name) != nil {
		return fmt.Errorf("object %q already exists", g.Name)
	}
	el := errors.NewErrorList()
	for _, def := range scripts {
		c, err := engine.CreateScript(s.env, def.name, def.props)
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", g.Name, err))
			continue
		}
		g.AddComponent(c)
	}
	if err := el.Err(); err != nil {
		return err
	}
	s.World.Add(g)
	return nil
}

type scriptDef struct {
	name  string
	props engine.Props
}
