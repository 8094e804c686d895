package config

import (
	"bytes"
	"fmt"
	"text/template"

	"fpinteract/internal/engine"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-errors"
)

var templateFuncs = sprig.TxtFuncMap()

// Prompts are text/template strings with sprig functions. They see
// PromptData.
type Prompts struct {
	Pickup    string `json:"pickup"`
	Smash     string `json:"smash"`
	DoorOpen  string `json:"door_open"`
	DoorClose string `json:"door_close"`
	DoorUsed  string `json:"door_used"`
}

// PromptData is what a prompt template can refer to.
type PromptData struct {
	// Key is the first key bound to the interact action.
	Key  string
	Item string
}

func defaultPrompts() Prompts {
	return Prompts{
		Pickup:    "[{{ .Key | upper }}] Pick up {{ .Item }}",
		Smash:     "[{{ .Key | upper }}] Smash",
		DoorOpen:  "[{{ .Key | upper }}] Open",
		DoorClose: "[{{ .Key | upper }}] Close",
		DoorUsed:  "Used...",
	}
}

func (p Prompts) Validate() error {
	el := errors.NewErrorList()
	for name, text := range map[string]string{
		"pickup":     p.Pickup,
		"smash":      p.Smash,
		"door_open":  p.DoorOpen,
		"door_close": p.DoorClose,
		"door_used":  p.DoorUsed,
	} {
		if _, err := ExpandPrompt(text, PromptData{Key: "f", Item: "Item"}); err != nil {
			el.Add(fmt.Errorf("prompts.%s: %w", name, err))
		}
	}
	return el.Err()
}

// ExpandPrompt renders a prompt template.
func ExpandPrompt(text string, data PromptData) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// PromptData returns the template data for a prompt about item, which may be
// empty.
func (s *Settings) PromptData(item string) PromptData {
	data := PromptData{Item: item}
	if keys := s.Keys[engine.ActionInteract.String()]; len(keys) > 0 {
		data.Key = keys[0]
	}
	return data
}
