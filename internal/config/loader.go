package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "minesweeper.yaml"

// LoadMinesweeper loads the session configuration.
// Search order: customPath -> ~/.minesweeper/configs/minesweeper.yaml ->
// ./configs/minesweeper.yaml -> embedded default.
// A config that fails validation is an error only for customPath; other
// candidates are skipped.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMinesweeperYAML)
	if err != nil {
		return DefaultMinesweeperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hard-coded defaults, so partial files only
// override the keys they set, and validates the result.
func parse(data []byte) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinesweeperConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MinesweeperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minesweeper", "configs", filename)
}
