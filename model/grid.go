package model

import "iter"

// RandomSource supplies the randomness used to seed a grid.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// neighborOffsets is the Moore stencil without the zero offset
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid owns a fixed rectangular collection of cells indexed by [column][row]
type Grid struct {
	columns int
	rows    int
	cells   [][]*Cell
}

// NewGrid creates a grid with every cell dead. Dimensions are not validated.
func NewGrid(columns, rows int) *Grid {
	cells := make([][]*Cell, columns)
	for column := range cells {
		cells[column] = make([]*Cell, rows)
		for row := range cells[column] {
			cells[column][row] = newCell(column, row)
		}
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   cells,
	}
}

// NewGridForArea creates a grid that covers a width x height area with square cells of cellSize
func NewGridForArea(width, height, cellSize int) *Grid {
	return NewGrid(width/cellSize, height/cellSize)
}

// GetColumns returns the number of columns of the grid
func (g *Grid) GetColumns() int {
	return g.columns
}

// GetRows returns the number of rows of the grid
func (g *Grid) GetRows() int {
	return g.rows
}

// IsValidPosition reports whether (column, row) lies inside the grid
func (g *Grid) IsValidPosition(column, row int) bool {
	validColumn := column >= 0 && column < g.columns
	validRow := row >= 0 && row < g.rows
	return validColumn && validRow
}

// GetCell returns the cell at (column, row), or nil when the position is outside the grid
func (g *Grid) GetCell(column, row int) *Cell {
	if !g.IsValidPosition(column, row) {
		return nil
	}
	return g.cells[column][row]
}

// Cells yields every cell of the grid, column by column
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for column := range g.columns {
			for row := range g.rows {
				if !yield(g.cells[column][row]) {
					return
				}
			}
		}
	}
}

// GetNeighbors yields the up to 8 cells adjacent to cell. Edge and corner cells have fewer.
func (g *Grid) GetNeighbors(cell *Cell) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, offset := range neighborOffsets {
			column, row := cell.column+offset[0], cell.row+offset[1]
			if !g.IsValidPosition(column, row) {
				continue
			}
			if !yield(g.cells[column][row]) {
				return
			}
		}
	}
}

// Randomize sets every cell alive or dead with equal probability
func (g *Grid) Randomize(src RandomSource) {
	for cell := range g.Cells() {
		cell.SetIsAlive(src.IntN(2) == 1)
	}
}

// UpdateNeighborCounts recomputes every cell's live neighbor count from the current generation.
// It must run before UpdatePopulation on every generation.
func (g *Grid) UpdateNeighborCounts() {
	for cell := range g.Cells() {
		cell.liveNeighborCount = 0
		for neighbor := range g.GetNeighbors(cell) {
			if neighbor.isAlive {
				cell.liveNeighborCount++
			}
		}
	}
}

// UpdatePopulation applies the life rule to every cell using the counts from the last UpdateNeighborCounts
func (g *Grid) UpdatePopulation() {
	for cell := range g.Cells() {
		cell.LiveOrDie()
	}
}

// Step advances the grid by one generation
func (g *Grid) Step() {
	g.UpdateNeighborCounts()
	g.UpdatePopulation()
}
