package main

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-sketch/render"
	"github.com/sheikhrachel/go-gol-sketch/render/window"
	"github.com/sheikhrachel/go-gol-sketch/sketch"
	"github.com/sheikhrachel/go-gol-sketch/utils"
)

// loadConfig reads the config file, falling back to the defaults when it cannot be used
func loadConfig(path string) utils.Config {
	config, err := utils.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			log.WithField("path", path).Info("using default configuration (config file not found)")
		} else {
			log.WithError(err).Warn("using default configuration")
		}
		return utils.DefaultConfig()
	}
	return config
}

// applyOverrides applies command line flags on top of the loaded config
func applyOverrides(config utils.Config, renderer string, seed uint64, generations int) utils.Config {
	if renderer != "" {
		config.Renderer = renderer
	}
	if seed != 0 {
		config.Seed = seed
	}
	if generations >= 0 {
		config.MaxGenerations = generations
	}
	return config
}

// setupLogging picks the log level and keeps full-screen renderers free of log output
func setupLogging(config utils.Config) {
	if config.Renderer == utils.RendererTcell {
		log.SetHandler(discard.New())
	} else {
		log.SetHandler(text.New(os.Stderr))
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, using info", config.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// newRandomSource returns a PCG source for seed, or a clock based one when seed is 0
func newRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// displaySketchInfo logs the initial sketch information
func displaySketchInfo(config utils.Config, sim *sketch.Simulation) {
	log.WithFields(log.Fields{
		"columns":   sim.Grid().GetColumns(),
		"rows":      sim.Grid().GetRows(),
		"cell_size": config.CellSize,
		"living":    sim.Grid().CountLivingCells(),
		"renderer":  config.Renderer,
		"seed_mode": config.SeedMode,
	}).Info("starting sketch")
}

// displayFinalStats logs the stats of the finished run
func displayFinalStats(sim *sketch.Simulation) {
	stats := sim.Stats()
	log.WithFields(log.Fields{
		"generations":     sim.Generation(),
		"runtime":         time.Since(stats.StartTime).Round(time.Millisecond).String(),
		"gen_per_sec":     stats.GenerationsPerSecond,
		"avg_population":  stats.AveragePopulation,
		"memory_rss_byte": stats.MemoryUsage(),
		"restarts":        sim.Status().Restarts,
	}).Info("sketch finished")
}

// run drives the simulation with the configured renderer and samples memory alongside it.
// Text output of the plain renderer goes to out.
func run(ctx context.Context, config utils.Config, sim *sketch.Simulation, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := sim.Stats().SampleMemoryEvery(ctx, config.MemorySampleInterval); err != nil {
			log.WithError(err).Warn("memory sampling disabled")
		}
		return nil
	})

	switch config.Renderer {
	case utils.RendererWindow:
		// ebiten needs the main goroutine
		err := window.Run(ctx, sim)
		cancel()
		if waitErr := eg.Wait(); err == nil {
			err = waitErr
		}
		return err

	case utils.RendererTcell:
		renderer, err := render.NewTcellRenderer()
		if err != nil {
			cancel()
			_ = eg.Wait()
			return err
		}
		defer renderer.Close()

		eg.Go(func() error { return renderer.WatchQuit(ctx) })
		eg.Go(func() error {
			defer cancel()
			return sim.Run(ctx, renderer)
		})

	default:
		renderer := render.NewTerminalRenderer(out)
		eg.Go(func() error {
			defer cancel()
			return sim.Run(ctx, renderer)
		})
	}

	if err := eg.Wait(); err != nil && errors.Cause(err) != render.ErrQuit {
		return err
	}
	return nil
}
