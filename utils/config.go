package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	SeedModeRandom   = "random"
	SeedModePatterns = "patterns"

	RendererPlain  = "plain"
	RendererTcell  = "tcell"
	RendererWindow = "window"
)

// Config holds the configuration for the sketch
type Config struct {
	CanvasWidth          int           `json:"canvas_width"`
	CanvasHeight         int           `json:"canvas_height"`
	CellSize             int           `json:"cell_size"`
	FrameRate            time.Duration `json:"frame_rate"`
	MaxGenerations       int           `json:"max_generations"`
	Seed                 uint64        `json:"seed"`
	SeedMode             string        `json:"seed_mode"`
	RandomDensity        float64       `json:"random_density"`
	AutoRestart          bool          `json:"auto_restart"`
	StagnationThreshold  int           `json:"stagnation_threshold"`
	Renderer             string        `json:"renderer"`
	LogLevel             string        `json:"log_level"`
	MemorySampleInterval time.Duration `json:"memory_sample_interval"`
}

// DefaultConfig returns the 400x400 canvas with 20 pixel cells of the original sketch
func DefaultConfig() Config {
	return Config{
		CanvasWidth:          400,
		CanvasHeight:         400,
		CellSize:             20,
		FrameRate:            100 * time.Millisecond,
		MaxGenerations:       0, // run until stopped
		Seed:                 0, // time based
		SeedMode:             SeedModeRandom,
		RandomDensity:        0.15,
		AutoRestart:          false,
		StagnationThreshold:  5,
		Renderer:             RendererPlain,
		LogLevel:             "info",
		MemorySampleInterval: 2 * time.Second,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values the grid and frame loop depend on
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell_size must be positive, got %d", c.CellSize)
	case c.CanvasWidth < c.CellSize || c.CanvasHeight < c.CellSize:
		return errors.Errorf("canvas %dx%d is smaller than one %d pixel cell",
			c.CanvasWidth, c.CanvasHeight, c.CellSize)
	case c.FrameRate <= 0:
		return errors.Errorf("frame_rate must be positive, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.StagnationThreshold < 1:
		return errors.Errorf("stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	case c.MemorySampleInterval <= 0:
		return errors.Errorf("memory_sample_interval must be positive, got %v", c.MemorySampleInterval)
	}

	switch c.SeedMode {
	case SeedModeRandom, SeedModePatterns:
	default:
		return errors.Errorf("unknown seed_mode %q", c.SeedMode)
	}

	switch c.Renderer {
	case RendererPlain, RendererTcell, RendererWindow:
	default:
		return errors.Errorf("unknown renderer %q", c.Renderer)
	}

	return nil
}
