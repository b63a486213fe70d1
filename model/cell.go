package model

import "github.com/sheikhrachel/go-gol-sketch/rules"

// Cell is a single automaton unit at a fixed grid position
type Cell struct {
	column int
	row    int

	isAlive bool
	// liveNeighborCount is only meaningful between a neighbor-count pass and the next one
	liveNeighborCount int
}

func newCell(column, row int) *Cell {
	return &Cell{column: column, row: row}
}

// GetColumn returns the column of the cell
func (c *Cell) GetColumn() int {
	return c.column
}

// GetRow returns the row of the cell
func (c *Cell) GetRow() int {
	return c.row
}

// IsAlive reports whether the cell is alive
func (c *Cell) IsAlive() bool {
	return c.isAlive
}

// GetLiveNeighborCount returns the count computed by the last neighbor-count pass
func (c *Cell) GetLiveNeighborCount() int {
	return c.liveNeighborCount
}

// SetIsAlive sets the alive state of the cell
func (c *Cell) SetIsAlive(alive bool) {
	c.isAlive = alive
}

// LiveOrDie moves the cell to its next state using its current live neighbor count
func (c *Cell) LiveOrDie() {
	c.isAlive = rules.LiveOrDie(c.isAlive, c.liveNeighborCount)
}
