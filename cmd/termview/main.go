// Command termview plays the maze inside a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"mazecaster/internal/config"
	"mazecaster/internal/gameplay"
	"mazecaster/internal/termview"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	logPath := flag.String("log", "termview.log", "log file; the terminal is owned by the view")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	session, _, err := gameplay.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := termview.New(screen, session, cfg).Run(ctx)
	screen.Fini()
	if runErr != nil && ctx.Err() == nil {
		log.Fatalf("[Termview] %v", runErr)
	}
	log.Printf("[Termview] Exited")
}
