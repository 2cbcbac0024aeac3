package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in presets: the three classic boards.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Default: "beginner",
		Presets: []Preset{
			{ID: "beginner", Title: "Beginner", Rows: 9, Cols: 9, Mines: 10},
			{ID: "intermediate", Title: "Intermediate", Rows: 16, Cols: 16, Mines: 40},
			{ID: "expert", Title: "Expert", Rows: 16, Cols: 30, Mines: 99},
		},
	}
}
