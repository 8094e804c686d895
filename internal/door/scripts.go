package door

import (
	"fmt"
	"time"

	"fpinteract/internal/engine"
	"fpinteract/internal/items"

	"github.com/pixil98/go-errors"
)

func init() {
	engine.RegisterScript("Door", doorFactory, doorSerializer)
}

func doorFactory(env *engine.ScriptEnv, props engine.Props) (engine.Component, error) {
	d := NewDoor()

	d.OpenTrigger = props.String("openTrigger", d.OpenTrigger)
	d.CloseTrigger = props.String("closeTrigger", d.CloseTrigger)
	d.OpenStateName = props.String("openState", d.OpenStateName)
	d.ClosedStateName = props.String("closedState", d.ClosedStateName)
	d.StartOpen = props.Bool("startOpen", false)

	d.RequiresItem = props.Bool("requiresItem", false)
	d.ConsumeItem = props.Bool("consumeItem", false)
	d.LockedMessage = props.String("lockedMessage", d.LockedMessage)

	d.OpenSound = props.String("openSound", "")
	d.CloseSound = props.String("closeSound", "")
	d.LockedSound = props.String("lockedSound", "")

	d.PromptWhenClosed = props.String("promptWhenClosed", d.PromptWhenClosed)
	d.PromptWhenOpen = props.String("promptWhenOpen", d.PromptWhenOpen)
	d.PromptAfterInteraction = props.String("promptAfterInteraction", d.PromptAfterInteraction)
	seconds := props.Float("promptDuration", float32(d.PromptDisplayDuration.Seconds()))
	d.PromptDisplayDuration = time.Duration(float64(seconds) * float64(time.Second))

	if sel, ok := engine.Service[Selection](env); ok {
		d.Inventory = sel
	}
	if sched, ok := engine.Service[*engine.Scheduler](env); ok {
		d.Scheduler = sched
	}
	if sounds, ok := engine.Service[SoundPlayer](env); ok {
		d.Sounds = sounds
	}

	el := errors.NewErrorList()
	if seconds < 0 {
		el.Add(fmt.Errorf("promptDuration must not be negative"))
	}
	if name := props.String("requiredItem", ""); name != "" {
		catalog, ok := engine.Service[*items.Catalog](env)
		switch {
		case !ok:
			el.Add(fmt.Errorf("item catalog: %w", engine.ErrDependencyUnavailable))
		case catalog.Get(name) == nil:
			el.Add(fmt.Errorf("required item %q is not in the catalog", name))
		default:
			d.RequiredItem = catalog.Get(name)
		}
	} else if d.RequiresItem {
		el.Add(fmt.Errorf("requiredItem: %w", engine.ErrConfigurationMissing))
	}
	if err := el.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func doorSerializer(c engine.Component) engine.Props {
	d, ok := c.(*Door)
	if !ok {
		return nil
	}
	props := engine.Props{
		"openTrigger":            d.OpenTrigger,
		"closeTrigger":           d.CloseTrigger,
		"openState":              d.OpenStateName,
		"closedState":            d.ClosedStateName,
		"startOpen":              d.StartOpen,
		"requiresItem":           d.RequiresItem,
		"consumeItem":            d.ConsumeItem,
		"lockedMessage":          d.LockedMessage,
		"promptWhenClosed":       d.PromptWhenClosed,
		"promptWhenOpen":         d.PromptWhenOpen,
		"promptAfterInteraction": d.PromptAfterInteraction,
		"promptDuration":         d.PromptDisplayDuration.Seconds(),
	}
	if d.RequiredItem != nil {
		props["requiredItem"] = d.RequiredItem.Name()
	}
	return props
}
