package minesweeper

import "errors"

// Errors returned by Board. Ordinary rejected moves (revealing a flagged cell,
// flagging past the budget, acting after game over) are silent no-ops, not errors.
var (
	ErrOutOfBounds       = errors.New("minesweeper: cell out of bounds")
	ErrInvalidDimensions = errors.New("minesweeper: rows and cols must be positive")
	ErrInvalidMineCount  = errors.New("minesweeper: mine count must not be negative")
	ErrTooManyMines      = errors.New("minesweeper: too many mines for board")
)
