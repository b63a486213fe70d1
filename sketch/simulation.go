// Package sketch drives a Game of Life grid one generation per frame and hands it to a renderer.
package sketch

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sketch/model"
	"github.com/sheikhrachel/go-gol-sketch/utils"
)

// Renderer draws a grid once per frame
type Renderer interface {
	Clear() error
	Display(g *model.Grid, status Status) error
}

// Status summarizes the simulation after the latest generation
type Status struct {
	Generation     int
	LivingCells    int
	Density        float64
	Stagnant       bool
	Restarts       int
	LastRestartGen int
}

// String renders the status as a single line
func (s Status) String() string {
	state := "Active"
	if s.Stagnant {
		state = "Stagnant"
	}
	if s.LivingCells == 0 {
		state = "Extinct"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		s.Generation, s.LivingCells, s.Density, state)
}

// Simulation owns a grid and advances it one generation per Step
type Simulation struct {
	config utils.Config
	src    model.RandomSource
	grid   *model.Grid

	history       model.History
	stats         *utils.Stats
	generation    int
	stagnantCount int
	status        Status
	lastStep      time.Time
}

// New builds the grid for the configured canvas and seeds it from src.
// config must pass utils.Config.Validate; a zero cell size divides by zero.
func New(config utils.Config, src model.RandomSource) *Simulation {
	s := &Simulation{
		config:   config,
		src:      src,
		grid:     model.NewGridForArea(config.CanvasWidth, config.CanvasHeight, config.CellSize),
		stats:    utils.NewStats(),
		lastStep: time.Now(),
	}
	s.seed()
	s.refreshStatus()
	return s
}

func (s *Simulation) seed() {
	if s.config.SeedMode == utils.SeedModePatterns {
		s.grid.SeedPatterns(s.src, s.config.RandomDensity)
	} else {
		s.grid.Randomize(s.src)
	}
	s.history.Reset()
	s.stagnantCount = 0
}

// Grid returns the simulated grid
func (s *Simulation) Grid() *model.Grid {
	return s.grid
}

// Generation returns the number of generations computed so far
func (s *Simulation) Generation() int {
	return s.generation
}

// Status returns the status after the latest generation
func (s *Simulation) Status() Status {
	return s.status
}

// Stats returns the performance stats of the run
func (s *Simulation) Stats() *utils.Stats {
	return s.stats
}

// Config returns the configuration the simulation was built with
func (s *Simulation) Config() utils.Config {
	return s.config
}

// Step advances the grid by one generation
func (s *Simulation) Step() {
	// Every count is computed before any cell changes state.
	s.grid.UpdateNeighborCounts()
	s.grid.UpdatePopulation()
	s.generation++

	now := time.Now()
	s.stats.Update(s.generation, s.grid.CountLivingCells(), now.Sub(s.lastStep))
	s.lastStep = now

	hash := s.grid.GetGridHash()
	stagnant := s.history.IsStagnant(hash)
	s.history.Record(hash)
	if stagnant {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}

	s.refreshStatus()
	s.status.Stagnant = stagnant

	if reason, restart := s.checkRestartConditions(); restart {
		s.restart(reason)
	}
}

func (s *Simulation) checkRestartConditions() (string, bool) {
	if !s.config.AutoRestart {
		return "", false
	}
	if s.status.LivingCells == 0 {
		return "extinction", true
	}
	if s.stagnantCount >= s.config.StagnationThreshold {
		return "stagnation detected", true
	}
	return "", false
}

func (s *Simulation) restart(reason string) {
	log.WithFields(log.Fields{
		"generation": s.generation,
		"reason":     reason,
	}).Info("restarting")

	s.seed()
	s.refreshStatus()
	s.status.Restarts++
	s.status.LastRestartGen = s.generation
}

func (s *Simulation) refreshStatus() {
	living := s.grid.CountLivingCells()
	total := s.grid.GetColumns() * s.grid.GetRows()

	s.status.Generation = s.generation
	s.status.LivingCells = living
	s.status.Stagnant = false
	s.status.Density = 0
	if total > 0 {
		s.status.Density = float64(living) / float64(total) * 100
	}
}

// Done reports whether a frame loop should stop: ctx is done or MaxGenerations (when set) is reached
func (s *Simulation) Done(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return s.config.MaxGenerations > 0 && s.generation >= s.config.MaxGenerations
}

// Run clears, steps and displays once per frame until ctx is done or MaxGenerations is reached
func (s *Simulation) Run(ctx context.Context, renderer Renderer) error {
	if err := s.config.Validate(); err != nil {
		return errors.Wrap(err, "[Run] invalid config")
	}

	ticker := time.NewTicker(s.config.FrameRate)
	defer ticker.Stop()

	for {
		if s.Done(ctx) {
			log.WithField("generations", s.generation).Info("frame loop stopped")
			return nil
		}

		if err := renderer.Clear(); err != nil {
			return errors.Wrapf(err, "[Run] failed to clear frame at generation %d", s.generation)
		}

		s.Step()

		if err := renderer.Display(s.grid, s.status); err != nil {
			return errors.Wrapf(err, "[Run] failed to display generation %d", s.generation)
		}

		log.WithFields(log.Fields{
			"generation": s.generation,
			"living":     s.status.LivingCells,
		}).Debug("frame")

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
