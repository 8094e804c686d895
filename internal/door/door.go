// Package door implements a two-state gate that may need an inventory item
// to open.
package door

import (
	"fmt"
	"log/slog"
	"time"

	"fpinteract/internal/engine"
	"fpinteract/internal/interaction"
	"fpinteract/internal/items"
)

// Animator plays the door's visual states.
type Animator interface {
	SetTrigger(name string)
	// Play jumps to state; atEnd selects the last frame of its animation.
	Play(state string, atEnd bool)
}

// StateBinder is an Animator that takes its trigger and state names from the
// door driving it.
type StateBinder interface {
	BindStates(openTrigger, closeTrigger, openState, closedState string)
}

// SoundPlayer plays one-shot clips. An empty clip is ignored.
type SoundPlayer interface {
	PlayOneShot(clip string)
}

// Selection is the part of the inventory a door reads and consumes from.
type Selection interface {
	Selected() *items.Item
	RemoveSelected() *items.Item
}

// Door toggles between closed and open when used. With RequiresItem set, the
// inventory's selected item must be RequiredItem itself; an item that only
// shares its name does not count.
type Door struct {
	engine.BaseComponent

	Animator  Animator
	Sounds    SoundPlayer
	Inventory Selection
	Scheduler *engine.Scheduler

	OpenTrigger     string
	CloseTrigger    string
	OpenStateName   string
	ClosedStateName string
	StartOpen       bool

	RequiresItem  bool
	RequiredItem  *items.Item
	ConsumeItem   bool
	LockedMessage string

	OpenSound   string
	CloseSound  string
	LockedSound string

	PromptWhenClosed       string
	PromptWhenOpen         string
	PromptAfterInteraction string
	PromptDisplayDuration  time.Duration

	// OnLocked carries LockedMessage when an attempt fails for want of the item.
	OnLocked engine.EventWithArg[string]
	OnOpened engine.Event
	OnClosed engine.Event

	isOpen        bool
	misconfigured bool
	trigger       *interaction.Interactable
	pendingPrompt *engine.Timer
}

func NewDoor() *Door {
	return &Door{
		OpenTrigger:            "Open",
		CloseTrigger:           "Close",
		OpenStateName:          "Door_Open",
		ClosedStateName:        "Door_Close",
		LockedMessage:          "You need a key...",
		PromptWhenClosed:       "[F] Open",
		PromptWhenOpen:         "[F] Close",
		PromptAfterInteraction: "Used...",
		PromptDisplayDuration:  200 * time.Millisecond,
	}
}

func (d *Door) logger() *slog.Logger {
	return slog.With("door", d.ObjectName())
}

func (d *Door) Start() {
	log := d.logger()
	g := d.GetGameObject()

	if d.Animator == nil {
		d.Animator = engine.GetComponent[Animator](g)
	}
	if d.Sounds == nil {
		d.Sounds = engine.GetComponent[SoundPlayer](g)
	}
	if found, ok := engine.GetComponentInChildren[*interaction.Interactable](g); ok {
		d.trigger = found
	} else {
		log.Error("door has no interactable; prompt will not update")
	}
	if d.Animator == nil {
		log.Error("door has no animator", "error", engine.ErrDependencyUnavailable)
	} else if binder, ok := d.Animator.(StateBinder); ok {
		binder.BindStates(d.OpenTrigger, d.CloseTrigger, d.OpenStateName, d.ClosedStateName)
	}

	if err := d.initState(); err != nil {
		log.Error("door disabled", "error", err)
		d.misconfigured = true
		d.SetEnabled(false)
		return
	}
	d.setPrompt(d.restingPrompt())
	log.Info("door initialized", "open", d.isOpen)
}

// initState matches the visual state to StartOpen. A door that should start
// open but has no open state name falls back to closed.
func (d *Door) initState() error {
	d.isOpen = d.StartOpen
	state := d.ClosedStateName

	if d.StartOpen {
		if d.OpenStateName != "" {
			state = d.OpenStateName
		} else {
			d.logger().Error("open state name not set; starting closed",
				"error", engine.ErrConfigurationMissing)
			d.isOpen = false
		}
	}
	if state == "" {
		return fmt.Errorf("closed state name: %w", engine.ErrConfigurationMissing)
	}

	if d.Animator != nil {
		d.Animator.Play(state, true)
	}
	return nil
}

// IsOpen reports the current state.
func (d *Door) IsOpen() bool {
	return d.isOpen
}

// AttemptToggle opens a closed door or closes an open one. A failed attempt
// leaves the door, the inventory and the requirement untouched.
func (d *Door) AttemptToggle() error {
	if d.misconfigured {
		return fmt.Errorf("door %q: %w", d.ObjectName(), engine.ErrConfigurationMissing)
	}
	if d.RequiresItem {
		if err := d.checkRequirement(); err != nil {
			return err
		}
	}

	next := d.PromptWhenOpen
	if d.isOpen {
		next = d.PromptWhenClosed
	}
	d.showTemporaryPrompt(d.PromptAfterInteraction, next)

	if d.isOpen {
		d.close()
	} else {
		d.open()
	}
	return nil
}

func (d *Door) checkRequirement() error {
	log := d.logger()

	if d.Inventory == nil {
		d.playSound(d.LockedSound)
		err := fmt.Errorf("door %q inventory: %w", d.ObjectName(), engine.ErrDependencyUnavailable)
		log.Error("no inventory to check", "error", err)
		return err
	}

	selected := d.Inventory.Selected()
	if selected == nil || selected != d.RequiredItem {
		d.playSound(d.LockedSound)
		if d.LockedMessage != "" {
			d.OnLocked.Invoke(d.LockedMessage)
		}
		log.Info("door locked", "required", d.RequiredItem.String(), "selected", selected.String())
		return fmt.Errorf("door %q needs %s: %w", d.ObjectName(), d.RequiredItem.String(), engine.ErrRequirementNotMet)
	}

	if d.ConsumeItem {
		d.Inventory.RemoveSelected()
		d.RequiresItem = false
		log.Info("item consumed; door unlocked", "item", selected.Name())
	}
	return nil
}

func (d *Door) open() {
	if d.isOpen {
		return
	}
	d.isOpen = true
	if d.Animator != nil {
		d.Animator.SetTrigger(d.OpenTrigger)
	}
	d.playSound(d.OpenSound)
	d.logger().Info("door opened")
	d.OnOpened.Invoke()
}

func (d *Door) close() {
	if !d.isOpen {
		return
	}
	d.isOpen = false
	if d.Animator != nil {
		d.Animator.SetTrigger(d.CloseTrigger)
	}
	d.playSound(d.CloseSound)
	d.logger().Info("door closed")
	d.OnClosed.Invoke()
}

func (d *Door) restingPrompt() string {
	if d.isOpen {
		return d.PromptWhenOpen
	}
	return d.PromptWhenClosed
}

func (d *Door) playSound(clip string) {
	if d.Sounds == nil || clip == "" {
		return
	}
	d.Sounds.PlayOneShot(clip)
}
