package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/backdrop/backend/term"
)

func main() {
	cfg := term.DefaultConfig()

	particles := flag.Int("particles", cfg.Field.ParticleCount, "The number of particles in the backdrop.")
	fps := flag.Int("fps", cfg.FPS, "Frames per second.")
	cellWidth := flag.Float64("cell-width", cfg.CellWidth, "Pixels covered by one terminal column.")
	cellHeight := flag.Float64("cell-height", cfg.CellHeight, "Pixels covered by one terminal row.")
	flag.Parse()

	cfg.Field.ParticleCount = *particles
	cfg.FPS = *fps
	cfg.CellWidth = *cellWidth
	cfg.CellHeight = *cellHeight

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}

	runner, err := term.NewRunner(screen, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
