// Package minesweeper implements the board engine: grid model, mine
// placement, reveal/flag rules, pointer mapping and rendering. It only talks
// to its host through core.Surface and core.PointerSource, so everything
// here runs headless under test.
package minesweeper

// Cell is the state of one grid position.
type Cell struct {
	HasMine  bool // Cell holds a mine
	Adjacent int  // Mines among the up-to-8 neighbours; unused when HasMine
	Revealed bool
	Flagged  bool
}

// Coord is a grid position. X is the column, Y the row.
type Coord struct {
	X, Y int
}
