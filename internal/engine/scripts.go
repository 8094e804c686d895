package engine

import (
	"fmt"
	"slices"
	"strings"
)

// Props are the configuration values a script is built from.
type Props map[string]any

func (p Props) String(key, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Float accepts float64 (JSON numbers), float32 and int.
func (p Props) Float(key string, fallback float32) float32 {
	switch v := p[key].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	}
	return fallback
}

func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

// Strings accepts []string or a JSON-decoded []any of strings.
func (p Props) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// ScriptEnv carries the shared services a script factory may need, such as the
// session inventory or the item catalog.
type ScriptEnv struct {
	services []any
}

func NewScriptEnv(services ...any) *ScriptEnv {
	return &ScriptEnv{services: services}
}

func (e *ScriptEnv) Provide(service any) {
	e.services = append(e.services, service)
}

// Service returns the first provided service assignable to T.
func Service[T any](env *ScriptEnv) (T, bool) {
	var zero T
	if env == nil {
		return zero, false
	}
	for _, s := range env.services {
		if typed, ok := s.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// ScriptFactory creates a Component from props.
type ScriptFactory func(env *ScriptEnv, props Props) (Component, error)

// ScriptSerializer converts a Component back to props. It returns nil for
// components it does not own.
type ScriptSerializer func(c Component) Props

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
}

var scriptRegistry = map[string]scriptEntry{}

// RegisterScript registers a named script with a factory and optional serializer.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = scriptEntry{factory: factory, serializer: serializer}
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(env *ScriptEnv, name string, props Props) (Component, error) {
	entry, ok := scriptRegistry[name]
	if !ok {
		return nil, fmt.Errorf("script %q is not registered (known: %s)",
			name, strings.Join(RegisteredScripts(), ", "))
	}
	c, err := entry.factory(env, props)
	if err != nil {
		return nil, fmt.Errorf("creating script %q: %w", name, err)
	}
	return c, nil
}

// SerializeScript finds the registered script that owns c and returns its
// current props. ok is false for components no serializer claims.
func SerializeScript(c Component) (string, Props, bool) {
	for name, entry := range scriptRegistry {
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredScripts returns a sorted list of all registered script names.
func RegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
