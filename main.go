package main

import (
	"errors"
	"log"

	"mazecaster/internal/config"
	"mazecaster/internal/game"
	"mazecaster/internal/gameplay"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg, err := config.LoadOrDefault("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	session, _, err := gameplay.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.GetTPS())

	g := game.NewGame(cfg, session)
	defer g.Shutdown()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
