package utils

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int

	// memoryUsage is written by the sampler goroutine, so it is kept atomic
	memoryUsage atomic.Uint64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// MemoryUsage returns the last sampled resident set size in bytes
func (s *Stats) MemoryUsage() uint64 {
	return s.memoryUsage.Load()
}

// SampleMemory reads the resident set size of the current process
func (s *Stats) SampleMemory() error {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return errors.Wrap(err, "[SampleMemory] failed to open current process")
	}

	info, err := proc.MemoryInfo()
	if err != nil {
		return errors.Wrap(err, "[SampleMemory] failed to read memory info")
	}

	s.memoryUsage.Store(info.RSS)
	return nil
}

// SampleMemoryEvery samples memory on every tick until ctx is done
func (s *Stats) SampleMemoryEvery(ctx context.Context, interval time.Duration) error {
	if err := s.SampleMemory(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.SampleMemory(); err != nil {
				return err
			}
		}
	}
}
