package game

import (
	"fmt"
	"log/slog"

	"fpinteract/internal/components"
	"fpinteract/internal/config"
	"fpinteract/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Settings  *config.Settings
	Session   *Session
	Keyboard  *components.Keyboard
	DebugMode bool
}

func New(settings *config.Settings) (*Game, error) {
	bindings, err := settings.Bindings()
	if err != nil {
		return nil, err
	}
	return &Game{
		Settings: settings,
		Keyboard: components.NewKeyboard(bindings),
	}, nil
}

func (g *Game) Run() error {
	win := g.Settings.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()

	rl.SetTargetFPS(win.TargetFPS)
	rl.DisableCursor()
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)

	session, err := NewSession(g.Settings, g.Keyboard)
	if err != nil {
		return fmt.Errorf("building level: %w", err)
	}
	g.Session = session
	defer session.Assets.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	slog.Info("window closed")
	return nil
}

func (g *Game) Update() {
	g.Keyboard.Poll()
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	g.Session.Tick(rl.GetFrameTime())
}

func (g *Game) Draw() {
	s := g.Session

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(s.Controller.Camera())
	s.World.Draw()
	if g.DebugMode {
		g.drawColliders()
	}
	rl.EndMode3D()

	g.drawCrosshair()
	s.Prompt.Draw()
	s.Carousel.Draw()
	g.DrawUI()

	rl.EndDrawing()
}

func (g *Game) drawColliders() {
	for _, obj := range g.Session.World.GetCollidableObjects() {
		collider := engine.GetComponent[*components.BoxCollider](obj)
		box := collider.Bounds()
		color := rl.Green
		if focused := g.Session.Focus.Focused(); focused != nil && focused.GetGameObject() == obj {
			color = rl.Yellow
		}
		rl.DrawCubeWiresV(box.Center(), box.Size(), color)
	}
}

func (g *Game) drawCrosshair() {
	cx := int32(rl.GetScreenWidth()) / 2
	cy := int32(rl.GetScreenHeight()) / 2
	rl.DrawLine(cx-6, cy, cx+6, cy, rl.White)
	rl.DrawLine(cx, cy-6, cx, cy+6, rl.White)
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Mouse to look, F to interact", 10, 10, 20, rl.LightGray)
	rl.DrawText("Tab inventory, Q/E cycle items, F1 colliders", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	if g.DebugMode {
		s := g.Session
		rl.DrawText(fmt.Sprintf("Objects: %d  Timers: %d  Items: %d",
			len(s.World.Scene.GameObjects), s.Scheduler.PendingCount(), s.Inventory.Len()), 10, 85, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Selected: %s  Pickups left: %d",
			s.Inventory.Selected(), len(s.World.Scene.FindByTag("pickup"))), 10, 105, 16, rl.Green)

		if focused := s.Focus.Focused(); focused != nil {
			for i, line := range Inspect(focused.GetGameObject()) {
				rl.DrawText(line, 10, 130+int32(i)*18, 14, rl.Yellow)
			}
		}
	}
}
