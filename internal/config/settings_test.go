package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pixil98/go-testutil"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "distance", s.InteractionDistance, float32(2))
	testutil.AssertEqual(t, "prompt", s.PromptDisplayDuration(), 200*time.Millisecond)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	data := `{
		"interaction_distance": 3.5,
		"prompt_duration": "1s",
		"log_level": "debug",
		"keys": {"interact": ["E"]},
		"items": [{"name": "Crowbar"}]
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "distance", s.InteractionDistance, float32(3.5))
	testutil.AssertEqual(t, "prompt", s.PromptDisplayDuration(), time.Second)
	testutil.AssertEqual(t, "width kept", s.Window.Width, int32(1280))
	testutil.AssertEqual(t, "items", len(s.Items), 1)

	level, err := s.Level()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "level", level, slog.LevelDebug)

	bindings, err := s.Bindings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "interact key", bindings[engine.ActionInteract][0], int32(rl.KeyE))
	testutil.AssertEqual(t, "toggle key kept", bindings[engine.ActionToggleInventory][0], int32(rl.KeyTab))
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]struct {
		data   string
		expErr string
	}{
		"bad json": {
			data:   `{`,
			expErr: "parsing settings",
		},
		"non-positive distance": {
			data:   `{"interaction_distance": 0}`,
			expErr: "interaction_distance must be positive",
		},
		"negative prompt duration": {
			data:   `{"prompt_duration": "-1s"}`,
			expErr: "prompt_duration: must be positive",
		},
		"unparsable prompt duration": {
			data:   `{"prompt_duration": "soon"}`,
			expErr: "prompt_duration",
		},
		"unknown key": {
			data:   `{"keys": {"interact": ["hyper"]}}`,
			expErr: `unknown key "hyper"`,
		},
		"unknown action": {
			data:   `{"keys": {"jump": ["space"]}}`,
			expErr: `unknown action "jump"`,
		},
		"unbound action": {
			data:   `{"keys": {"interact": []}}`,
			expErr: "interact has no binding",
		},
		"bad log level": {
			data:   `{"log_level": "chatty"}`,
			expErr: "log_level",
		},
		"unnamed item": {
			data:   `{"items": [{"icon": "x.png"}]}`,
			expErr: "item name is required",
		},
		"bad prompt template": {
			data:   `{"prompts": {"pickup": "{{ .Item"}}`,
			expErr: "prompts.pickup",
		},
		"unknown prompt field": {
			data:   `{"prompts": {"smash": "{{ .Hammer }}"}}`,
			expErr: "prompts.smash",
		},
		"window": {
			data:   `{"window": {"width": 0, "height": 0}}`,
			expErr: "window size must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestKeyCode(t *testing.T) {
	code, ok := KeyCode("F")
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "code", code, int32(rl.KeyF))

	code, ok = KeyCode("7")
	testutil.AssertEqual(t, "digit", code, int32(rl.KeySeven))

	_, ok = KeyCode("hyper")
	testutil.AssertEqual(t, "unknown", ok, false)
}

func TestExpandPrompt(t *testing.T) {
	s := Default()

	text, err := ExpandPrompt(s.Prompts.Pickup, s.PromptData("Lantern"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "pickup", text, "[F] Pick up Lantern")

	text, err = ExpandPrompt(`{{ .Item | lower }} ({{ .Key }})`, PromptData{Key: "e", Item: "Key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "sprig funcs", text, "key (e)")
}
