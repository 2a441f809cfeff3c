//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifecanvas/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	ebiten.SetWindowTitle("lifecanvas — Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
