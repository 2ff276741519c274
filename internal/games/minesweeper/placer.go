package minesweeper

import "math/rand"

// Placer marks random cells as mines and keeps adjacency counts current.
type Placer struct {
	grid *Grid
	rng  *rand.Rand
}

// NewPlacer creates a placer drawing coordinates from rng.
func NewPlacer(g *Grid, rng *rand.Rand) *Placer {
	return &Placer{grid: g, rng: rng}
}

// Place marks count distinct cells as mines and returns how many were placed.
//
// Coordinates are drawn uniformly and redrawn when they hit an existing mine,
// so the number of draws grows as the board fills up. count is clamped to the
// number of free cells.
func (p *Placer) Place(count int) int {
	free := p.grid.Size()*p.grid.Size() - p.grid.MineCount()
	if count > free {
		count = free
	}

	placed := 0
	for placed < count {
		x := p.rng.Intn(p.grid.Size())
		y := p.rng.Intn(p.grid.Size())
		if p.PlaceAt(x, y) {
			placed++
		}
	}
	return placed
}

// PlaceAt turns (x, y) into a mine and increments every non-mine neighbour.
// Returns false if the cell already was a mine.
func (p *Placer) PlaceAt(x, y int) bool {
	c := p.grid.At(x, y)
	if c.HasMine {
		return false
	}
	c.HasMine = true

	p.grid.Neighbors(x, y, func(nx, ny int) {
		if n := p.grid.At(nx, ny); !n.HasMine {
			n.Adjacent++
		}
	})
	return true
}
