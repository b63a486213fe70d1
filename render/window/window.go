// Package window shows a running simulation in a desktop window.
package window

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-gol-sketch/render"
	"github.com/sheikhrachel/go-gol-sketch/sketch"
)

const windowTitle = "Game of Life"

var statusFace = text.NewGoXFace(basicfont.Face7x13)

// Game adapts a Simulation to the ebiten game loop
type Game struct {
	ctx     context.Context
	sim     *sketch.Simulation
	palette render.Palette
}

func NewGame(ctx context.Context, sim *sketch.Simulation) *Game {
	return &Game{ctx: ctx, sim: sim, palette: render.DefaultPalette}
}

// Update advances the simulation by one generation per tick
func (g *Game) Update() error {
	if g.sim.Done(g.ctx) {
		return ebiten.Termination
	}

	g.sim.Step()
	return nil
}

// Draw paints the background, one inset square per cell and the status line
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	cellSize := g.sim.Config().CellSize
	for cell := range g.sim.Grid().Cells() {
		r := render.CellRect(cell.GetColumn(), cell.GetRow(), cellSize)
		vector.DrawFilledRect(screen,
			float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
			g.palette.CellColor(cell.IsAlive()), false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(6, 6)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, g.sim.Status().String(), statusFace, op)
}

// Layout keeps the logical screen at the configured canvas size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	config := g.sim.Config()
	return config.CanvasWidth, config.CanvasHeight
}

// Run opens the window and blocks until it is closed, ctx is done or the generation limit is hit.
// It must be called from the main goroutine.
func Run(ctx context.Context, sim *sketch.Simulation) error {
	config := sim.Config()
	ebiten.SetWindowSize(config.CanvasWidth, config.CanvasHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(render.TicksPerSecond(config.FrameRate))

	if err := ebiten.RunGame(NewGame(ctx, sim)); err != nil {
		return errors.Wrap(err, "[Run] window closed with error")
	}
	return nil
}
