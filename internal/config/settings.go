// Package config loads the player-facing settings file.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fpinteract/internal/engine"
	"fpinteract/internal/items"

	"github.com/pixil98/go-errors"
)

const DefaultPath = "settings.json"

type Settings struct {
	Window              WindowSettings      `json:"window"`
	InteractionDistance float32             `json:"interaction_distance"`
	PromptDuration      string              `json:"prompt_duration"`
	NoticeDuration      string              `json:"notice_duration"`
	LogLevel            string              `json:"log_level"`
	Keys                map[string][]string `json:"keys"`
	Prompts             Prompts             `json:"prompts"`
	Items               []items.Spec        `json:"items"`
}

type WindowSettings struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Title     string `json:"title"`
	TargetFPS int32  `json:"target_fps"`
}

// Default returns the settings used when no file is present. A settings file
// only needs to name the fields it changes.
func Default() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:     1280,
			Height:    720,
			Title:     "fpinteract",
			TargetFPS: 120,
		},
		InteractionDistance: 2,
		PromptDuration:      "200ms",
		NoticeDuration:      "2s",
		LogLevel:            "info",
		Keys: map[string][]string{
			engine.ActionToggleInventory.String(): {"tab"},
			engine.ActionNextItem.String():        {"e"},
			engine.ActionPreviousItem.String():    {"q"},
			engine.ActionInteract.String():        {"f"},
		},
		Prompts: defaultPrompts(),
		Items: []items.Spec{
			{Name: "Key", Icon: "assets/icons/key.png", Description: "Opens the cellar door."},
			{Name: "Potion", Icon: "assets/icons/potion.png", Description: "Smells of pine."},
			{Name: "Lantern", Icon: "assets/icons/lantern.png", Description: "Out of oil."},
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Info("no settings file; using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	el := errors.NewErrorList()

	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		el.Add(fmt.Errorf("window size must be positive"))
	}
	if s.InteractionDistance <= 0 {
		el.Add(fmt.Errorf("interaction_distance must be positive"))
	}
	if _, err := parsePositiveDuration(s.PromptDuration); err != nil {
		el.Add(fmt.Errorf("prompt_duration: %w", err))
	}
	if _, err := parsePositiveDuration(s.NoticeDuration); err != nil {
		el.Add(fmt.Errorf("notice_duration: %w", err))
	}
	if _, err := s.Level(); err != nil {
		el.Add(err)
	}
	if _, err := s.Bindings(); err != nil {
		el.Add(err)
	}
	el.Add(s.Prompts.Validate())
	for i, spec := range s.Items {
		if err := spec.Validate(); err != nil {
			el.Add(fmt.Errorf("item %d: %w", i, err))
		}
	}

	return el.Err()
}

func (s *Settings) PromptDisplayDuration() time.Duration {
	d, _ := parsePositiveDuration(s.PromptDuration)
	return d
}

func (s *Settings) NoticeDisplayDuration() time.Duration {
	d, _ := parsePositiveDuration(s.NoticeDuration)
	return d
}

// Level parses LogLevel as a slog level name such as "debug" or "warn".
func (s *Settings) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

func parsePositiveDuration(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", v)
	}
	return d, nil
}
