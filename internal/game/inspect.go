package game

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"fpinteract/internal/engine"
)

// Inspect describes g for the debug overlay: a header line, then one line per
// component. Registered scripts list their current props in key order.
func Inspect(g *engine.GameObject) []string {
	if g == nil {
		return nil
	}
	lines := []string{fmt.Sprintf("%s #%d", g.Name, g.UID)}
	for _, c := range g.Components() {
		name, props, ok := engine.SerializeScript(c)
		if !ok {
			lines = append(lines, fmt.Sprintf("  %T", c))
			continue
		}
		var b strings.Builder
		b.WriteString("  " + name)
		for _, key := range slices.Sorted(maps.Keys(props)) {
			switch v := props[key].(type) {
			case string:
				fmt.Fprintf(&b, " %s=%q", key, v)
			default:
				fmt.Fprintf(&b, " %s=%v", key, v)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
