// Package ui adapts the core game to ebiten: it accumulates raw input into
// the core's per-tick buffer, forwards the render pass to the screen, and
// wires gameplay hooks to sound effects.
package ui

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/loganfranken/line/core/game"
	"github.com/loganfranken/line/core/stage"
	"github.com/loganfranken/line/internal/audio"
	game_log "github.com/loganfranken/line/internal/log"
)

// writeClipboard is swappable in tests.
var writeClipboard = clipboard.WriteAll

type Game struct {
	core   *game.Game
	snd    *audio.Engine
	logger *game_log.Logger

	in game.Input

	leftPrev  bool
	pausePrev bool
	copyPrev  bool
}

func New(core *game.Game, snd *audio.Engine, logger *game_log.Logger) *Game {
	g := &Game{core: core, snd: snd, logger: logger}
	core.Hooks = game.Hooks{
		NodeActivated: func(stage.NodeKind) { snd.Play(audio.SoundTouch) },
		LineReset: func(reason game.ResetReason) {
			if reason == game.ResetBlocked || reason == game.ResetMissedNode {
				snd.Play(audio.SoundCollide)
			}
		},
		MessageShown:   func(string) { snd.Play(audio.SoundMessage) },
		ReplyConfirmed: func() { snd.Play(audio.SoundReply) },
		StageAdvanced:  func(int) { snd.Play(audio.SoundAdvance) },
	}
	return g
}

// Update polls ebiten's input state into the core's buffer and runs one core
// tick. Edge detection uses prev-flags so one press yields one event.
func (g *Game) Update() error {
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !g.leftPrev {
		g.in.Clicked = true
	}
	pause := isKeyPressed(ebiten.KeyP) || isKeyPressed(ebiten.KeyEscape)
	if pause && !g.pausePrev {
		g.in.PauseClicked = true
	}
	g.in.PointerHeld = left
	g.in.ReplyHeld = isKeyPressed(ebiten.KeyX)
	if left {
		x, y := cursorPosition()
		g.in.AddMove(float64(x), float64(y))
	}

	c := isKeyPressed(ebiten.KeyC)
	if c && !g.copyPrev && (g.core.State() == game.StatePaused || g.core.Finished()) {
		if err := writeClipboard(g.core.ShareText()); err != nil {
			g.logger.Warnf("[UI] clipboard write failed: %v", err)
		} else {
			g.logger.Infof("[UI] score copied to clipboard")
		}
	}

	g.leftPrev = left
	g.pausePrev = pause
	g.copyPrev = c

	g.core.Update(&g.in)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.core.Render(NewRenderer(screen, game.DefaultWidth, game.DefaultHeight))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.DefaultWidth, game.DefaultHeight
}
