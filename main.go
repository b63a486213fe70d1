package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"

	"github.com/sheikhrachel/go-gol-sketch/sketch"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "Path to the JSON config file")
		renderer    = flag.String("renderer", "", "Renderer to use: plain, tcell or window")
		seed        = flag.Uint64("seed", 0, "Seed for the initial population (0 picks one from the clock)")
		generations = flag.Int("generations", -1, "Stop after this many generations (0 runs until stopped)")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config := loadConfig(*configPath)
	config = applyOverrides(config, *renderer, *seed, *generations)
	if err := config.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	setupLogging(config)

	sim := sketch.New(config, newRandomSource(config.Seed))
	displaySketchInfo(config, sim)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, sim, os.Stdout); err != nil {
		log.WithError(err).Error("sketch stopped with error")
		stop()
		os.Exit(1)
	}

	displayFinalStats(sim)
}
