package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the default configuration.
// Mine density is 10%.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Grid: GridConfig{
			Size:  10,
			Mines: 10,
		},
		Canvas: CanvasConfig{
			Size:   20,
			Offset: 1,
			ScaleX: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMinesweeperYAML
}
