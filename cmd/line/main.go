package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/loganfranken/line/content"
	"github.com/loganfranken/line/core/game"
	"github.com/loganfranken/line/internal/audio"
	game_log "github.com/loganfranken/line/internal/log"
	"github.com/loganfranken/line/internal/ui"
)

func main() {
	logger := game_log.New(os.Stderr, game_log.ParseLevel(os.Getenv("LINE_LOG_LEVEL")))

	core := game.New(game.Config{Stages: content.Stages()}, logger)
	snd := audio.NewEngine(logger)
	g := ui.New(core, snd, logger)

	ebiten.SetWindowSize(game.DefaultWidth, game.DefaultHeight)
	ebiten.SetWindowTitle("Line")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
