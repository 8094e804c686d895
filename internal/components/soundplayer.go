package components

import (
	"fpinteract/internal/assets"
	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SoundPlayer plays one-shot clips through an asset cache.
type SoundPlayer struct {
	engine.BaseComponent

	Assets *assets.Cache
	Volume float32
}

func NewSoundPlayer(cache *assets.Cache) *SoundPlayer {
	return &SoundPlayer{
		Assets: cache,
		Volume: 1.0,
	}
}

// PlayOneShot plays clip. An empty clip, a clip that failed to load, or a
// missing audio device is a no-op.
func (s *SoundPlayer) PlayOneShot(clip string) {
	if clip == "" || s.Assets == nil || !rl.IsAudioDeviceReady() {
		return
	}
	sound, ok := s.Assets.Sound(clip)
	if !ok {
		return
	}
	rl.SetSoundVolume(sound, s.Volume)
	rl.PlaySound(sound)
}
