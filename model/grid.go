package model

import (
	"crypto/md5"
	"fmt"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// Grid is a bounded board stored as a single row-major buffer with a
// one-cell dead border on every side. Interior cells live at rows 1..rows-2
// and cols 1..cols-2 in padded coordinates.
type Grid struct {
	rows  int // padded
	cols  int // padded
	cells []Cell
}

// NewGrid creates a grid for the declared interior dimensions, all cells dead
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Reset(rows, cols)
	return g
}

// Rows returns the number of interior rows
func (g *Grid) Rows() int {
	return g.rows - 2
}

// Cols returns the number of interior columns
func (g *Grid) Cols() int {
	return g.cols - 2
}

// PaddedRows returns the row count including the border
func (g *Grid) PaddedRows() int {
	return g.rows
}

// PaddedCols returns the column count including the border
func (g *Grid) PaddedCols() int {
	return g.cols
}

// Reset resizes the grid to the declared interior dimensions and kills every cell
func (g *Grid) Reset(rows, cols int) {
	g.rows = max(rows, 0) + 2
	g.cols = max(cols, 0) + 2

	size := g.rows * g.cols
	if cap(g.cells) < size {
		g.cells = make([]Cell, size)
		return
	}
	g.cells = g.cells[:size]
	g.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

func (g *Grid) inInterior(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// Get returns the cell at padded coordinates, Dead when out of range
func (g *Grid) Get(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Dead
	}
	return g.cells[g.index(row, col)]
}

// Set writes an interior cell. Writes to the border or outside the grid are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if g.inInterior(row, col) {
		g.cells[g.index(row, col)] = c
	}
}

// IsAlive reports whether the cell at padded coordinates is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.Get(row, col) == Alive
}

// CountNeighbors counts living neighbors of an interior cell. The dead border
// makes every access in range, so no bounds checks are performed.
func (g *Grid) CountNeighbors(row, col int) int {
	var (
		count = 0
		above = g.index(row-1, col)
		here  = g.index(row, col)
		below = g.index(row+1, col)
	)
	for _, c := range g.cells[above-1 : above+2] {
		count += int(c)
	}
	count += int(g.cells[here-1]) + int(g.cells[here+1])
	for _, c := range g.cells[below-1 : below+2] {
		count += int(c)
	}
	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// BorderIsDead reports whether every border cell is dead
func (g *Grid) BorderIsDead() bool {
	for col := range g.cols {
		if g.Get(0, col) != Dead || g.Get(g.rows-1, col) != Dead {
			return false
		}
	}
	for row := range g.rows {
		if g.Get(row, 0) != Dead || g.Get(row, g.cols-1) != Dead {
			return false
		}
	}
	return true
}

// SameSize reports whether both grids have identical dimensions
func (g *Grid) SameSize(other *Grid) bool {
	return other != nil && g.rows == other.rows && g.cols == other.cols
}

// Equal reports whether both grids have the same dimensions and interior
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameSize(other) {
		return false
	}
	for row := 1; row < g.rows-1; row++ {
		start, end := g.index(row, 1), g.index(row, g.cols-1)
		for i := start; i < end; i++ {
			if g.cells[i] != other.cells[i] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the interior state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for row := 1; row < g.rows-1; row++ {
		cells := g.cells[g.index(row, 1):g.index(row, g.cols-1)]
		buf := make([]byte, len(cells))
		for i, c := range cells {
			buf[i] = byte(c)
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
