package config

import (
	"fmt"
	"strings"

	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pixil98/go-errors"
)

var actionsByName = map[string]engine.InputAction{}

var keysByName = map[string]int32{
	"space":     rl.KeySpace,
	"enter":     rl.KeyEnter,
	"tab":       rl.KeyTab,
	"escape":    rl.KeyEscape,
	"backspace": rl.KeyBackspace,
	"left":      rl.KeyLeft,
	"right":     rl.KeyRight,
	"up":        rl.KeyUp,
	"down":      rl.KeyDown,
	"lshift":    rl.KeyLeftShift,
	"rshift":    rl.KeyRightShift,
	"lctrl":     rl.KeyLeftControl,
}

func init() {
	for _, a := range []engine.InputAction{
		engine.ActionToggleInventory,
		engine.ActionNextItem,
		engine.ActionPreviousItem,
		engine.ActionInteract,
	} {
		actionsByName[a.String()] = a
	}
	for c := 'a'; c <= 'z'; c++ {
		keysByName[string(c)] = rl.KeyA + (c - 'a')
	}
	for c := '0'; c <= '9'; c++ {
		keysByName[string(c)] = rl.KeyZero + (c - '0')
	}
}

// KeyCode returns the raylib key for a case-insensitive key name.
func KeyCode(name string) (int32, bool) {
	code, ok := keysByName[strings.ToLower(name)]
	return code, ok
}

// Bindings resolves Keys into raylib key codes per action. Every action must
// keep at least one key.
func (s *Settings) Bindings() (map[engine.InputAction][]int32, error) {
	el := errors.NewErrorList()
	bindings := make(map[engine.InputAction][]int32, len(s.Keys))

	for actionName, keyNames := range s.Keys {
		action, ok := actionsByName[actionName]
		if !ok {
			el.Add(fmt.Errorf("keys: unknown action %q", actionName))
			continue
		}
		for _, keyName := range keyNames {
			code, ok := KeyCode(keyName)
			if !ok {
				el.Add(fmt.Errorf("keys: unknown key %q for %s", keyName, actionName))
				continue
			}
			bindings[action] = append(bindings[action], code)
		}
	}
	for name, action := range actionsByName {
		if len(bindings[action]) == 0 && len(s.Keys[name]) == 0 {
			el.Add(fmt.Errorf("keys: %s has no binding", name))
		}
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return bindings, nil
}
