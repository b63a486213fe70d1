package sketch

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sketch/model"
	"github.com/sheikhrachel/go-gol-sketch/utils"
)

// constSource returns the same value for every draw
type constSource struct {
	n int
	f float64
}

func (c constSource) IntN(int) int     { return c.n }
func (c constSource) Float64() float64 { return c.f }

type recordingRenderer struct {
	calls      []string
	statuses   []Status
	onDisplay  func()
	displayErr error
}

func (r *recordingRenderer) Clear() error {
	r.calls = append(r.calls, "clear")
	return nil
}

func (r *recordingRenderer) Display(g *model.Grid, status Status) error {
	r.calls = append(r.calls, "display")
	r.statuses = append(r.statuses, status)
	if r.onDisplay != nil {
		r.onDisplay()
	}
	return r.displayErr
}

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.CanvasWidth = 100
	config.CanvasHeight = 100
	config.CellSize = 20
	config.FrameRate = time.Millisecond
	return config
}

func TestNewSizesGridFromCanvas(t *testing.T) {
	config := utils.DefaultConfig()
	sim := New(config, rand.New(rand.NewPCG(1, 2)))
	if sim.Grid().GetColumns() != 20 || sim.Grid().GetRows() != 20 {
		t.Errorf("grid = %dx%d, want 20x20", sim.Grid().GetColumns(), sim.Grid().GetRows())
	}
	if sim.Generation() != 0 {
		t.Errorf("generation = %d, want 0", sim.Generation())
	}
	if sim.Status().LivingCells != sim.Grid().CountLivingCells() {
		t.Error("initial status does not match the grid")
	}
}

func TestNewSeedModes(t *testing.T) {
	config := testConfig()
	sim := New(config, constSource{n: 1})
	if n := sim.Grid().CountLivingCells(); n != 25 {
		t.Errorf("random seed with IntN=1 gave %d living cells, want 25", n)
	}

	config.SeedMode = utils.SeedModePatterns
	config.RandomDensity = 0
	sim = New(config, constSource{n: 1, f: 0.5})
	if n := sim.Grid().CountLivingCells(); n != 0 {
		t.Errorf("pattern seed on a 5x5 grid gave %d living cells, want 0", n)
	}
}

func TestStepAdvancesGeneration(t *testing.T) {
	sim := New(testConfig(), constSource{n: 1})
	sim.Step()

	// A full 5x5 block keeps only its corners.
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", sim.Generation())
	}
	status := sim.Status()
	if status.LivingCells != 4 || status.Density != 16 {
		t.Errorf("status = %+v, want 4 living at 16%%", status)
	}
	for _, p := range [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}} {
		if !sim.Grid().Get(p[0], p[1]) {
			t.Errorf("corner %v died", p)
		}
	}
	if sim.Stats().TotalGenerations != 1 {
		t.Errorf("stats generations = %d, want 1", sim.Stats().TotalGenerations)
	}
}

func TestStepDetectsStagnation(t *testing.T) {
	sim := New(testConfig(), constSource{n: 0})
	for range 3 {
		sim.Step()
		if sim.Status().Stagnant {
			t.Fatalf("stagnant at generation %d with short history", sim.Generation())
		}
	}
	sim.Step()
	if !sim.Status().Stagnant {
		t.Error("dead grid not reported stagnant")
	}
	if !strings.Contains(sim.Status().String(), "Extinct") {
		t.Errorf("status line %q does not report extinction", sim.Status())
	}
}

func TestStepRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.AutoRestart = true
	sim := New(config, constSource{n: 1})

	sim.Step()
	sim.Step()

	status := sim.Status()
	if status.Restarts != 1 || status.LastRestartGen != 2 {
		t.Fatalf("status = %+v, want one restart at generation 2", status)
	}
	if status.LivingCells != 25 {
		t.Errorf("reseeded grid has %d living cells, want 25", status.LivingCells)
	}
	if sim.Generation() != 2 {
		t.Errorf("generation reset to %d", sim.Generation())
	}
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 3
	sim := New(config, rand.New(rand.NewPCG(5, 6)))
	renderer := &recordingRenderer{}

	if err := sim.Run(context.Background(), renderer); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"clear", "display", "clear", "display", "clear", "display"}
	if strings.Join(renderer.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", renderer.calls, want)
	}
	for i, status := range renderer.statuses {
		if status.Generation != i+1 {
			t.Errorf("frame %d displayed generation %d", i, status.Generation)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sim := New(testConfig(), rand.New(rand.NewPCG(5, 6)))
	renderer := &recordingRenderer{}
	renderer.onDisplay = func() {
		if len(renderer.statuses) == 2 {
			cancel()
		}
	}

	if err := sim.Run(ctx, renderer); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sim.Generation() != 2 {
		t.Errorf("ran %d generations after cancel, want 2", sim.Generation())
	}
}

func TestRunWrapsRendererErrors(t *testing.T) {
	errBroken := errors.New("broken screen")
	sim := New(testConfig(), rand.New(rand.NewPCG(5, 6)))

	err := sim.Run(context.Background(), &recordingRenderer{displayErr: errBroken})
	if errors.Cause(err) != errBroken {
		t.Fatalf("Run error = %v, want cause %v", err, errBroken)
	}
	if !strings.Contains(err.Error(), "generation 1") {
		t.Errorf("error %q does not name the generation", err)
	}
}

func TestDone(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 2
	sim := New(config, constSource{n: 0})

	if sim.Done(context.Background()) {
		t.Fatal("done before any generation")
	}
	sim.Step()
	if sim.Done(context.Background()) {
		t.Fatal("done one generation short of the limit")
	}
	sim.Step()
	if !sim.Done(context.Background()) {
		t.Error("not done at the generation limit")
	}
}

func TestDoneOnCancel(t *testing.T) {
	sim := New(testConfig(), constSource{n: 0})
	ctx, cancel := context.WithCancel(context.Background())
	if sim.Done(ctx) {
		t.Fatal("done before cancel")
	}
	cancel()
	if !sim.Done(ctx) {
		t.Error("not done after cancel")
	}
}

func TestDoneWithoutLimit(t *testing.T) {
	sim := New(testConfig(), constSource{n: 0})
	for range 10 {
		sim.Step()
	}
	if sim.Done(context.Background()) {
		t.Error("max_generations 0 stopped the loop")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*utils.Config)
	}{
		{"zero frame rate", func(c *utils.Config) { c.FrameRate = 0 }},
		{"negative frame rate", func(c *utils.Config) { c.FrameRate = -time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			tt.mutate(&config)
			sim := New(config, constSource{n: 0})
			renderer := &recordingRenderer{}

			err := sim.Run(context.Background(), renderer)
			if err == nil || !strings.Contains(err.Error(), "frame_rate") {
				t.Fatalf("Run error = %v, want a frame_rate error", err)
			}
			if len(renderer.calls) != 0 || sim.Generation() != 0 {
				t.Errorf("ran %d generations with %d renderer calls on an invalid config",
					sim.Generation(), len(renderer.calls))
			}
		})
	}
}

func TestStepWithThresholdOneOnlyRestartsWhenStagnant(t *testing.T) {
	config := testConfig()
	config.AutoRestart = true
	config.StagnationThreshold = 1
	// A lone blinker on the 5x5 grid keeps oscillating.
	sim := New(config, constSource{n: 0})
	sim.Grid().AddBlinker(1, 2)

	for range 3 {
		sim.Step()
		if sim.Status().Restarts != 0 {
			t.Fatalf("restarted at generation %d with a short history", sim.Generation())
		}
	}
	sim.Step()
	if sim.Status().Restarts != 1 {
		t.Errorf("restarts = %d, want 1 once the oscillation is seen", sim.Status().Restarts)
	}
}
