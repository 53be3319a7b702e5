package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/swipedeck/assets/icon"
	"github.com/depeter/swipedeck/internal/app"
	"github.com/depeter/swipedeck/internal/config"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game := app.NewGame(cfg)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("SwipeDeck")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
