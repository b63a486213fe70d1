package render

import (
	"image"
	"image/color"
)

// Palette holds the colors used to draw a grid
type Palette struct {
	Background color.Color
	Alive      color.Color
	Dead       color.Color
}

// DefaultPalette is magenta live cells on a light grey board
var DefaultPalette = Palette{
	Background: color.Gray{Y: 250},
	Alive:      color.RGBA{R: 200, G: 0, B: 200, A: 255},
	Dead:       color.Gray{Y: 240},
}

// CellColor returns the fill color for a cell state
func (p Palette) CellColor(alive bool) color.Color {
	if alive {
		return p.Alive
	}
	return p.Dead
}

// CellRect returns the pixel rectangle of the cell at (column, row).
// The square is inset by one pixel on the top and left so adjacent cells show a gap.
func CellRect(column, row, cellSize int) image.Rectangle {
	x, y := column*cellSize, row*cellSize
	return image.Rect(x+1, y+1, x+cellSize, y+cellSize)
}
