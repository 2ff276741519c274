package minesweeper

import "github.com/vovakirdan/tui-minesweeper/internal/core"

// Grid is the N*N matrix of cells.
// Cells are stored in row-major order: index = y*N + x.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid allocates a size*size grid of zero cells.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the side length N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// At returns a pointer to the cell at (x, y). Coordinates must be in bounds.
func (g *Grid) At(x, y int) *Cell {
	return &g.cells[y*g.size+x]
}

// Get returns a copy of the cell at (x, y), or a zero cell when out of bounds.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[y*g.size+x]
}

// Neighbors calls fn for each of the up-to-8 cells around (x, y).
// Edges clip the neighbourhood; there is no wraparound.
func (g *Grid) Neighbors(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

// MineCount returns the number of cells holding a mine.
func (g *Grid) MineCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].HasMine {
			n++
		}
	}
	return n
}

// FlagCount returns the number of flagged cells.
func (g *Grid) FlagCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Flagged {
			n++
		}
	}
	return n
}

// RevealedSafe returns the number of revealed cells without a mine.
func (g *Grid) RevealedSafe() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Revealed && !g.cells[i].HasMine {
			n++
		}
	}
	return n
}

// Geometry maps grid cells to surface pixels.
type Geometry struct {
	Size     int // Cells per side
	CellPx   int // Side of one cell in pixels
	OffsetPx int // Margin between the surface origin and the grid
}

// NewGeometry derives the cell size from the canvas size.
func NewGeometry(size, canvasPx, offsetPx int) Geometry {
	cell := 0
	if size > 0 {
		cell = canvasPx / size
	}
	return Geometry{Size: size, CellPx: cell, OffsetPx: offsetPx}
}

// Extent returns the side of the drawn grid in pixels.
func (g Geometry) Extent() int {
	return g.Size * g.CellPx
}

// SurfacePx returns the smallest surface side that holds the grid,
// including the offset and the closing grid line.
func (g Geometry) SurfacePx() int {
	return g.OffsetPx + g.Extent() + 1
}

// CellRect returns the pixel rectangle of cell (x, y), grid lines included.
func (g Geometry) CellRect(x, y int) core.Rect {
	return core.NewRect(g.OffsetPx+x*g.CellPx, g.OffsetPx+y*g.CellPx, g.CellPx, g.CellPx)
}

// CellCenter returns the pixel at the center of cell (x, y).
func (g Geometry) CellCenter(x, y int) core.Point {
	return g.CellRect(x, y).Center()
}
