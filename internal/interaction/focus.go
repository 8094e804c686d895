package interaction

import (
	"fmt"
	"log/slog"

	"fpinteract/internal/engine"
)

// DefaultInteractionDistance is the reach of the focus ray in world units.
const DefaultInteractionDistance = 2

// PromptSink shows the focus prompt on screen.
type PromptSink interface {
	ShowPrompt(text string)
	HidePrompt()
	SetText(text string)
}

// FocusTracker casts the view ray every tick, keeps the focused Interactable
// and uses it when the interact action is pressed.
type FocusTracker struct {
	engine.BaseComponent

	InteractionDistance float32
	World               engine.WorldAccess
	Look                engine.LookProvider
	Prompt              PromptSink
	Input               engine.Input

	focused   *Interactable
	shownText string
}

func NewFocusTracker(prompt PromptSink, input engine.Input) *FocusTracker {
	return &FocusTracker{
		InteractionDistance: DefaultInteractionDistance,
		Prompt:              prompt,
		Input:               input,
	}
}

// Start fills unset collaborators from the owning object and scene and
// disables the tracker when any is still missing.
func (f *FocusTracker) Start() {
	g := f.GetGameObject()
	if f.World == nil && g != nil && g.Scene != nil {
		f.World = g.Scene.World
	}
	if f.Look == nil {
		f.Look = engine.GetComponent[engine.LookProvider](g)
	}
	if err := f.validate(); err != nil {
		slog.Error("focus tracker disabled", "object", f.ObjectName(), "error", err)
		f.SetEnabled(false)
		return
	}
	f.Prompt.HidePrompt()
}

func (f *FocusTracker) validate() error {
	switch {
	case f.World == nil:
		return fmt.Errorf("ray source: %w", engine.ErrDependencyUnavailable)
	case f.Look == nil:
		return fmt.Errorf("look provider: %w", engine.ErrDependencyUnavailable)
	case f.Prompt == nil:
		return fmt.Errorf("prompt display: %w", engine.ErrDependencyUnavailable)
	case f.Input == nil:
		return fmt.Errorf("input: %w", engine.ErrDependencyUnavailable)
	}
	return nil
}

// Update runs detection first, then input, so a press acts on this tick's focus.
func (f *FocusTracker) Update(deltaTime float32) {
	f.Detect()
	f.HandleInput()
}

// Detect refreshes the focus from the view ray.
func (f *FocusTracker) Detect() {
	detected := f.cast()

	if detected == f.focused {
		// keep a visible prompt in step with state changes such as a door's
		// temporary "used" text
		if f.focused != nil && f.focused.Prompt != f.shownText {
			f.shownText = f.focused.Prompt
			f.Prompt.SetText(f.shownText)
		}
		return
	}

	if detected != nil {
		f.focused = detected
		f.shownText = detected.Prompt
		f.Prompt.ShowPrompt(f.shownText)
		return
	}
	f.clear()
}

// HandleInput uses the focused object once per press. The focus is dropped
// afterwards so the object has to be detected again before the next use.
func (f *FocusTracker) HandleInput() {
	if f.focused == nil || !f.Input.Pressed(engine.ActionInteract) {
		return
	}
	target := f.focused
	if err := target.Interact(); err != nil {
		slog.Info("interaction reported failure", "object", target.ObjectName(), "error", err)
	}
	f.clear()
}

// Focused returns the interactable currently aimed at, or nil.
func (f *FocusTracker) Focused() *Interactable {
	return f.focused
}

func (f *FocusTracker) cast() *Interactable {
	hit, ok := f.World.Raycast(f.Look.EyePosition(), f.Look.LookDirection(), f.InteractionDistance)
	if !ok || hit.GameObject == nil {
		return nil
	}
	target := engine.GetComponent[*Interactable](hit.GameObject)
	if target == nil || !target.Available() {
		return nil
	}
	return target
}

func (f *FocusTracker) clear() {
	f.focused = nil
	f.shownText = ""
	f.Prompt.HidePrompt()
}
