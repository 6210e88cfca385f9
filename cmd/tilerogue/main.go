// Package main is the entry point for tilerogue.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tilerogue/internal/game"
	"github.com/samdwyer/tilerogue/internal/logger"
	"github.com/samdwyer/tilerogue/internal/telemetry"
	"github.com/samdwyer/tilerogue/internal/world"
)

func main() {
	seed := flag.Int64("seed", 0, "map seed (0 picks one from the clock; overrides TILEROGUE_SEED)")
	size := flag.Int("size", 0, "grid side length (0 keeps TILEROGUE_GRID_SIZE or the default)")
	dump := flag.Bool("dump", false, "print the first level to stdout and exit")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	closer, err := logger.Init()
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer closer.Close()

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *size != 0 {
		cfg.Resize(*size)
	}

	catalog, err := game.LoadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	if *dump {
		s, err := game.NewSession(ctx, cfg, catalog)
		if err != nil {
			log.Fatalf("Failed to generate map: %v", err)
		}
		if err := world.Dump(os.Stdout, s.Map(), s.HeroPos(), true); err != nil {
			log.Fatalf("Failed to write map: %v", err)
		}
		if err := world.Legend(os.Stdout); err != nil {
			log.Fatalf("Failed to write legend: %v", err)
		}
		log.Printf("seed %d", s.Seed())
		return
	}

	g, err := game.New(ctx, cfg, catalog)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
