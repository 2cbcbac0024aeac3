// Package config provides YAML-based board preset loading for the sweeper.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

var (
	// ErrInvalidConfig is returned when a loaded config fails validation.
	ErrInvalidConfig = errors.New("config: invalid minesweeper config")
	// ErrUnknownPreset is returned by Lookup for an ID that is not configured.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// MinesweeperConfig contains the board presets and the one picked by default.
type MinesweeperConfig struct {
	Default string   `yaml:"default"`
	Presets []Preset `yaml:"presets"`
}

// Preset is a named board size.
type Preset struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Mines int    `yaml:"mines"`
}

// String formats the preset for listings, e.g. "Beginner (9x9, 10 mines)".
func (p Preset) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", p.Title, p.Rows, p.Cols, p.Mines)
}

// Validate checks that the board is playable.
func (p Preset) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: preset %q: board must be at least 1x1, got %dx%d", ErrInvalidConfig, p.ID, p.Rows, p.Cols)
	}
	if p.Mines < 0 {
		return fmt.Errorf("%w: preset %q: negative mine count %d", ErrInvalidConfig, p.ID, p.Mines)
	}
	if limit := minesweeper.MaxMines(p.Rows, p.Cols); p.Mines > limit {
		return fmt.Errorf("%w: preset %q: %d mines on %dx%d, max %d", ErrInvalidConfig, p.ID, p.Mines, p.Rows, p.Cols, limit)
	}
	return nil
}

// Validate checks every preset, that IDs are unique and that the default exists.
func (c MinesweeperConfig) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("%w: no presets", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("%w: preset with empty id", ErrInvalidConfig)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate preset %q", ErrInvalidConfig, p.ID)
		}
		seen[p.ID] = true

		if err := p.Validate(); err != nil {
			return err
		}
	}

	if !seen[c.Default] {
		return fmt.Errorf("%w: default preset %q not found", ErrInvalidConfig, c.Default)
	}
	return nil
}

// Lookup returns the preset with the given ID. An empty ID selects the default.
func (c MinesweeperConfig) Lookup(id string) (Preset, error) {
	if id == "" {
		id = c.Default
	}
	for _, p := range c.Presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
}

// DefaultPreset returns the configured default preset.
func (c MinesweeperConfig) DefaultPreset() Preset {
	p, err := c.Lookup("")
	if err != nil && len(c.Presets) > 0 {
		return c.Presets[0]
	}
	return p
}

// Custom builds a validated ad-hoc preset for a board given on the command line.
func Custom(rows, cols, mines int) (Preset, error) {
	p := Preset{
		ID:    "custom",
		Title: "Custom",
		Rows:  rows,
		Cols:  cols,
		Mines: mines,
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}
