// Package assets caches textures and sounds loaded from disk.
package assets

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cache loads each path once. A path that fails to load is remembered and not
// retried.
type Cache struct {
	textures map[string]rl.Texture2D
	sounds   map[string]rl.Sound
	failed   map[string]bool
}

func NewCache() *Cache {
	return &Cache{
		textures: make(map[string]rl.Texture2D),
		sounds:   make(map[string]rl.Sound),
		failed:   make(map[string]bool),
	}
}

func (c *Cache) Texture(path string) (rl.Texture2D, bool) {
	if path == "" || c.failed[path] {
		return rl.Texture2D{}, false
	}
	if texture, exists := c.textures[path]; exists {
		return texture, true
	}

	texture := rl.LoadTexture(path)
	if !rl.IsTextureValid(texture) {
		slog.Warn("failed to load texture", "path", path)
		c.failed[path] = true
		return rl.Texture2D{}, false
	}
	rl.SetTextureFilter(texture, rl.FilterBilinear)
	c.textures[path] = texture
	return texture, true
}

// Sound needs an initialized audio device.
func (c *Cache) Sound(path string) (rl.Sound, bool) {
	if path == "" || c.failed[path] {
		return rl.Sound{}, false
	}
	if sound, exists := c.sounds[path]; exists {
		return sound, true
	}

	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		slog.Warn("failed to load sound", "path", path)
		c.failed[path] = true
		return rl.Sound{}, false
	}
	c.sounds[path] = sound
	return sound, true
}

// Loaded reports how many assets are cached.
func (c *Cache) Loaded() int {
	return len(c.textures) + len(c.sounds)
}

func (c *Cache) Unload() {
	for _, texture := range c.textures {
		rl.UnloadTexture(texture)
	}
	for _, sound := range c.sounds {
		rl.UnloadSound(sound)
	}

	c.textures = make(map[string]rl.Texture2D)
	c.sounds = make(map[string]rl.Sound)
	c.failed = make(map[string]bool)
}
