// Package audio plays short synthesized feedback tones through the system
// speaker. It degrades to a no-op when disabled or when no output device is
// available, so the game loop never depends on sound working.
package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	game_log "github.com/loganfranken/line/internal/log"
)

type Sound int

const (
	SoundTouch Sound = iota
	SoundCollide
	SoundAdvance
	SoundMessage
	SoundReply
	soundCount
)

// tones maps each sound to its pitch, length and gain (effects.Volume units,
// base 2).
var tones = [soundCount]struct {
	freq float64
	dur  time.Duration
	vol  float64
}{
	SoundTouch:   {freq: 880, dur: 60 * time.Millisecond, vol: -1.5},
	SoundCollide: {freq: 110, dur: 180 * time.Millisecond, vol: -1},
	SoundAdvance: {freq: 660, dur: 250 * time.Millisecond, vol: -1},
	SoundMessage: {freq: 523.25, dur: 90 * time.Millisecond, vol: -2},
	SoundReply:   {freq: 1318.5, dur: 120 * time.Millisecond, vol: -1.5},
}

const sampleRate = beep.SampleRate(44100)

type Engine struct {
	enabled bool
	logger  *game_log.Logger
}

// NewEngine initializes the speaker unless LINE_AUDIO disables it. Speaker
// failure (e.g. a headless host) is logged and leaves the engine disabled.
func NewEngine(logger *game_log.Logger) *Engine {
	e := &Engine{enabled: true, logger: logger}
	if v := os.Getenv("LINE_AUDIO"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			e.enabled = on
		}
	}
	if !e.enabled {
		return e
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		logger.Warnf("[AUDIO] speaker unavailable, sound disabled: %v", err)
		e.enabled = false
	}
	return e
}

// Play queues one tone. Safe to call from the update loop; mixing happens on
// the speaker's own goroutine over immutable streamers.
func (e *Engine) Play(s Sound) {
	if !e.enabled || s < 0 || s >= soundCount {
		return
	}
	t := tones[s]
	tone, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		e.logger.Errorf("[AUDIO] generating %v Hz tone: %v", t.freq, err)
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.dur), tone),
		Base:     2,
		Volume:   t.vol,
	})
}

// Enabled reports whether tones will actually be played.
func (e *Engine) Enabled() bool { return e.enabled }
