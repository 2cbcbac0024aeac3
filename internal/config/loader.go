package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const minesweeperFile = "minesweeper.yaml"

// LoadMinesweeper loads the board presets.
// Search order: customPath -> ~/.sweeper/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
//
// Errors are only returned for an explicit customPath; broken files found on the
// search path are skipped.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMinesweeper(data)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(minesweeperFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", minesweeperFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseMinesweeper(defaultMinesweeperYAML)
	if err != nil {
		return DefaultMinesweeperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (MinesweeperConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MinesweeperConfig{}, false
	}
	cfg, err := parseMinesweeper(data)
	if err != nil {
		return MinesweeperConfig{}, false
	}
	return cfg, true
}

func parseMinesweeper(data []byte) (MinesweeperConfig, error) {
	var cfg MinesweeperConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Default == "" && len(cfg.Presets) > 0 {
		cfg.Default = cfg.Presets[0].ID
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweeper", "configs", filename)
}
