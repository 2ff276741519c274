// Package config provides YAML-based configuration of the minesweeper
// board constants: grid size, mine count and canvas geometry.
package config

import (
	"errors"
	"fmt"
)

// MinesweeperConfig contains all configuration for a minesweeper session.
type MinesweeperConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Canvas CanvasConfig `yaml:"canvas"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Size  int `yaml:"size"`  // Cells per side
	Mines int `yaml:"mines"` // Mines placed per session
}

// CanvasConfig defines the drawing geometry in surface pixels.
type CanvasConfig struct {
	Size   int `yaml:"size"`    // Canvas side length
	Offset int `yaml:"offset"`  // Content offset applied to drawing and input
	ScaleX int `yaml:"scale_x"` // Terminal columns per pixel (terminal host only)
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid minesweeper config")

// CellPx returns the side of one cell in pixels.
func (c MinesweeperConfig) CellPx() int {
	if c.Grid.Size <= 0 {
		return 0
	}
	return c.Canvas.Size / c.Grid.Size
}

// Validate checks the invariants the engine relies on.
func (c MinesweeperConfig) Validate() error {
	n := c.Grid.Size
	switch {
	case n < 1:
		return fmt.Errorf("%w: grid.size must be at least 1, got %d", ErrInvalidConfig, n)
	case c.Grid.Mines < 0 || c.Grid.Mines > n*n:
		return fmt.Errorf("%w: grid.mines must be within [0, %d], got %d", ErrInvalidConfig, n*n, c.Grid.Mines)
	case c.Canvas.Size < n:
		return fmt.Errorf("%w: canvas.size %d is smaller than grid.size %d", ErrInvalidConfig, c.Canvas.Size, n)
	case c.Canvas.Offset < 0:
		return fmt.Errorf("%w: canvas.offset must not be negative, got %d", ErrInvalidConfig, c.Canvas.Offset)
	case c.Canvas.ScaleX < 0:
		return fmt.Errorf("%w: canvas.scale_x must not be negative, got %d", ErrInvalidConfig, c.Canvas.ScaleX)
	}
	return nil
}
