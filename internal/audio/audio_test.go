package audio

import (
	"io"
	"testing"

	game_log "github.com/loganfranken/line/internal/log"
)

func TestDisabledEngineIsNoOp(t *testing.T) {
	t.Setenv("LINE_AUDIO", "0")
	e := NewEngine(game_log.New(io.Discard, game_log.LevelSilent))
	if e.Enabled() {
		t.Fatalf("engine enabled despite LINE_AUDIO=0")
	}
	// Must not panic, speaker was never initialized.
	e.Play(SoundTouch)
	e.Play(SoundAdvance)
	e.Play(Sound(-1))
	e.Play(Sound(999))
}

func TestToneTableCoversEverySound(t *testing.T) {
	for s := Sound(0); s < soundCount; s++ {
		tn := tones[s]
		if tn.freq <= 0 || tn.dur <= 0 {
			t.Fatalf("sound %d has no tone configured: %+v", s, tn)
		}
	}
}
