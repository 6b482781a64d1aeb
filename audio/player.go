package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/halvek/gatelight/core"
)

// Player synthesizes short UI tones through the speaker. A failed
// speaker init leaves it in silent mode; the game runs without sound.
type Player struct {
	enabled bool
	rate    beep.SampleRate
}

// NewPlayer initializes the speaker. Init failure is non-fatal and
// yields a silent player.
func NewPlayer(enabled bool) *Player {
	if !enabled {
		return &Player{}
	}
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return &Player{}
	}
	return &Player{enabled: true, rate: rate}
}

// Enabled reports whether the speaker initialized
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Play fires one tone asynchronously; silent mode is a no-op
func (p *Player) Play(sound core.SoundType) {
	if !p.Enabled() {
		return
	}
	freq, dur := tone(sound)
	sine, err := generators.SineTone(p.rate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(p.rate.N(dur), sine))
}

// Close shuts the speaker down
func (p *Player) Close() {
	if p.Enabled() {
		speaker.Close()
	}
}

func tone(sound core.SoundType) (freq float64, dur time.Duration) {
	switch sound {
	case core.SoundToggle:
		return 660, 40 * time.Millisecond
	case core.SoundClick:
		return 440, 30 * time.Millisecond
	case core.SoundComplete:
		return 880, 180 * time.Millisecond
	default:
		return 440, 30 * time.Millisecond
	}
}
