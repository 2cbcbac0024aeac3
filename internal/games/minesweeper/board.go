// Package minesweeper implements the Minesweeper minefield engine and the round
// controller that drives it from platform input.
package minesweeper

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-sweeper/internal/dependencies/random"
)

// Board owns the minefield state of one round: mine positions, flags, revealed
// cells and the game-over latch. Mines are placed lazily on the first reveal so
// the first clicked cell and its neighbourhood are always safe.
//
// Board is not safe for concurrent use; it is driven by exactly one caller.
type Board struct {
	rows      int
	cols      int
	mineCount int

	mines    mapset.Set[Cell]
	flags    mapset.Set[Cell]
	revealed mapset.Set[Cell]

	gameOver   bool
	firstClick bool

	rng random.Random
}

// MaxMines returns the largest mine count a rows x cols board accepts: every
// cell except the biggest possible first-click safe zone.
func MaxMines(rows, cols int) int {
	return rows*cols - min(3, rows)*min(3, cols)
}

// NewBoard creates a board in the fresh round state.
// A nil rng is replaced by a time-seeded source.
func NewBoard(rows, cols, mineCount int, rng random.Random) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if mineCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMineCount, mineCount)
	}
	if limit := MaxMines(rows, cols); mineCount > limit {
		return nil, fmt.Errorf("%w: %d mines on %dx%d (max %d)", ErrTooManyMines, mineCount, rows, cols, limit)
	}
	if rng == nil {
		rng = random.New(0)
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		rng:       rng,
	}
	b.Reset()
	return b, nil
}

// Reset clears mines, flags and revealed cells and starts a fresh round.
func (b *Board) Reset() {
	b.mines = mapset.New[Cell]()
	b.flags = mapset.New[Cell]()
	b.revealed = mapset.New[Cell]()
	b.gameOver = false
	b.firstClick = true
}

// InBounds reports whether c lies on the grid.
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

func (b *Board) checkBounds(c Cell) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, b.rows, b.cols)
	}
	return nil
}

// Neighbors returns the in-bounds Moore neighbours of c.
func (b *Board) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// SafeZone returns the 3x3 neighbourhood centred on origin, clipped to the grid.
func (b *Board) SafeZone(origin Cell) []Cell {
	return append([]Cell{origin}, b.Neighbors(origin)...)
}

// PlaceMines draws mineCount mines uniformly from every cell outside the safe
// zone of origin. It is called by the first RevealCell of a round; calling it
// again re-places the mines.
func (b *Board) PlaceMines(origin Cell) error {
	if err := b.checkBounds(origin); err != nil {
		return err
	}

	safe := mapset.New[Cell]()
	for _, c := range b.SafeZone(origin) {
		safe.Put(c)
	}

	candidates := make([]Cell, 0, b.rows*b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if !safe.Has(cell) {
				candidates = append(candidates, cell)
			}
		}
	}
	if len(candidates) < b.mineCount {
		return fmt.Errorf("%w: %d mines, %d free cells around %v", ErrTooManyMines, b.mineCount, len(candidates), origin)
	}

	// Partial Fisher-Yates: the first mineCount slots end up a uniform sample.
	mines := mapset.New[Cell]()
	for i := 0; i < b.mineCount; i++ {
		j := i + b.rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		mines.Put(candidates[i])
	}

	b.mines = mines
	b.firstClick = false
	return nil
}

// CountAdjacentMines returns how many of the up to eight neighbours of c are mines.
// Valid in any state, revealed or not.
func (b *Board) CountAdjacentMines(c Cell) (int, error) {
	if err := b.checkBounds(c); err != nil {
		return 0, err
	}
	return b.adjacentMines(c), nil
}

func (b *Board) adjacentMines(c Cell) int {
	count := 0
	for _, d := range neighborOffsets {
		if b.mines.Has(Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}) {
			count++
		}
	}
	return count
}

// RevealCell opens c. It does nothing once the game is over or when c is
// flagged or already revealed. The first reveal of a round places the mines.
// Revealing a mine ends the round without a cascade; revealing a safe cell
// flood-fills across zero-count cells.
func (b *Board) RevealCell(c Cell) error {
	if err := b.checkBounds(c); err != nil {
		return err
	}
	if b.gameOver || b.flags.Has(c) || b.revealed.Has(c) {
		return nil
	}

	if b.firstClick {
		if err := b.PlaceMines(c); err != nil {
			return err
		}
	}

	if b.mines.Has(c) {
		b.revealed.Put(c)
		b.gameOver = true
		return nil
	}

	b.floodReveal(c)
	return nil
}

// floodReveal opens seed and spreads through zero-count cells using an explicit
// stack. Every cell is revealed at most once, so the walk is O(rows*cols).
func (b *Board) floodReveal(seed Cell) {
	stack := []Cell{seed}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !b.InBounds(c) || b.revealed.Has(c) || b.flags.Has(c) {
			continue
		}
		b.revealed.Put(c)

		if b.adjacentMines(c) != 0 {
			continue
		}
		for _, d := range neighborOffsets {
			stack = append(stack, Cell{Row: c.Row + d.Row, Col: c.Col + d.Col})
		}
	}
}

// ToggleFlag flags or unflags c. Revealed cells and finished rounds are left
// alone, and a new flag is refused once the flag count reaches the mine count.
func (b *Board) ToggleFlag(c Cell) error {
	if err := b.checkBounds(c); err != nil {
		return err
	}
	if b.gameOver || b.revealed.Has(c) {
		return nil
	}

	if b.flags.Has(c) {
		b.flags.Remove(c)
		return nil
	}
	if b.flags.Size() < b.mineCount {
		b.flags.Put(c)
	}
	return nil
}

// CheckWin reports whether every non-mine cell has been revealed.
// It does not end the round; the caller decides how to react.
func (b *Board) CheckWin() bool {
	return b.revealed.Size() == b.rows*b.cols-b.mineCount
}

// Rows returns the number of grid rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of grid columns.
func (b *Board) Cols() int { return b.cols }

// MineCount returns the configured number of mines.
func (b *Board) MineCount() int { return b.mineCount }

// GameOver reports whether a mine has been revealed this round.
func (b *Board) GameOver() bool { return b.gameOver }

// FirstClick reports whether the round is still waiting for its first reveal.
func (b *Board) FirstClick() bool { return b.firstClick }

// IsMine reports whether c holds a mine.
func (b *Board) IsMine(c Cell) bool { return b.mines.Has(c) }

// IsFlagged reports whether c carries a flag.
func (b *Board) IsFlagged(c Cell) bool { return b.flags.Has(c) }

// IsRevealed reports whether c has been opened.
func (b *Board) IsRevealed(c Cell) bool { return b.revealed.Has(c) }

// FlagsRemaining returns how many flags may still be placed.
func (b *Board) FlagsRemaining() int { return b.mineCount - b.flags.Size() }

// Mines returns the mine positions in row-major order.
func (b *Board) Mines() []Cell { return sortedCells(b.mines) }

// Flags returns the flagged cells in row-major order.
func (b *Board) Flags() []Cell { return sortedCells(b.flags) }

// Revealed returns the revealed cells in row-major order.
func (b *Board) Revealed() []Cell { return sortedCells(b.revealed) }
