package minesweeper

// CellView is how a single cell should be drawn.
type CellView int

const (
	ViewHidden    CellView = iota // unrevealed, default appearance
	ViewFlagged                   // player marker
	ViewRevealed                  // opened, shows Count (0 renders blank)
	ViewMine                      // mine shown after a loss
	ViewExploded                  // the mine that ended the round
	ViewWrongFlag                 // flag on a safe cell, shown after a loss
)

// CellState is the view-state of one cell.
type CellState struct {
	View  CellView
	Count int
}

// View returns the view-state of c as of the last board mutation.
func (g *Game) View(c Cell) CellState {
	if !g.board.InBounds(c) {
		return CellState{}
	}
	return g.view[c.Row][c.Col]
}

// refreshView re-reads the board and rebuilds the per-cell view grid.
// On a loss every mine is shown except the ones the player already flagged.
func (g *Game) refreshView() {
	rows, cols := g.board.Rows(), g.board.Cols()
	if len(g.view) != rows {
		g.view = make([][]CellState, rows)
		for r := range g.view {
			g.view[r] = make([]CellState, cols)
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.view[r][c] = g.cellState(Cell{Row: r, Col: c})
		}
	}
}

func (g *Game) cellState(c Cell) CellState {
	b := g.board
	mine := b.IsMine(c)

	switch {
	case b.IsRevealed(c) && mine:
		return CellState{View: ViewExploded}
	case b.IsRevealed(c):
		count, err := b.CountAdjacentMines(c)
		if err != nil {
			return CellState{}
		}
		return CellState{View: ViewRevealed, Count: count}
	case b.IsFlagged(c) && g.lost && !mine:
		return CellState{View: ViewWrongFlag}
	case b.IsFlagged(c):
		return CellState{View: ViewFlagged}
	case g.lost && mine:
		return CellState{View: ViewMine}
	default:
		return CellState{View: ViewHidden}
	}
}
