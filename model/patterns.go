package model

import (
	"crypto/md5"
	"fmt"
)

// Set sets a cell to alive (true) or dead (false). Positions outside the grid are ignored.
func (g *Grid) Set(column, row int, alive bool) {
	if cell := g.GetCell(column, row); cell != nil {
		cell.SetIsAlive(alive)
	}
}

// Get returns the state of a cell, false outside the grid
func (g *Grid) Get(column, row int) bool {
	cell := g.GetCell(column, row)
	return cell != nil && cell.isAlive
}

// Clear kills every cell and zeroes the neighbor counts
func (g *Grid) Clear() {
	for cell := range g.Cells() {
		cell.isAlive = false
		cell.liveNeighborCount = 0
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for cell := range g.Cells() {
		if cell.isAlive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the alive flags in Cells order
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for cell := range g.Cells() {
		if cell.isAlive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// AddGlider adds a south-east moving glider with its top-left corner at (column, row)
func (g *Grid) AddGlider(column, row int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dy, line := range pattern {
		for dx, alive := range line {
			g.Set(column+dx, row+dy, alive)
		}
	}
}

// AddBlinker adds a horizontal blinker starting at (column, row)
func (g *Grid) AddBlinker(column, row int) {
	g.Set(column, row, true)
	g.Set(column+1, row, true)
	g.Set(column+2, row, true)
}

// SeedPatterns clears the grid, places a few gliders and blinkers and sprinkles random life at density
func (g *Grid) SeedPatterns(src RandomSource, density float64) {
	g.Clear()

	if g.columns >= 10 && g.rows >= 10 {
		g.AddGlider(1, 1)
		if g.columns >= 20 && g.rows >= 15 {
			g.AddGlider(g.columns-8, 1)
		}

		g.AddBlinker(g.columns/4, g.rows/2)
		if g.columns >= 30 {
			g.AddBlinker(3*g.columns/4, 3*g.rows/4)
		}
	}

	for cell := range g.Cells() {
		if src.Float64() < density {
			cell.isAlive = true
		}
	}
}
