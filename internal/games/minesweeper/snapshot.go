package minesweeper

// BoardSnapshot is a value copy of a board's observable state.
// Two snapshots are equal exactly when the boards are indistinguishable.
type BoardSnapshot struct {
	Rows       int
	Cols       int
	MineCount  int
	Mines      []Cell
	Flags      []Cell
	Revealed   []Cell
	GameOver   bool
	FirstClick bool
}

// Snapshot captures the board state.
func (b *Board) Snapshot() BoardSnapshot {
	return BoardSnapshot{
		Rows:       b.rows,
		Cols:       b.cols,
		MineCount:  b.mineCount,
		Mines:      b.Mines(),
		Flags:      b.Flags(),
		Revealed:   b.Revealed(),
		GameOver:   b.gameOver,
		FirstClick: b.firstClick,
	}
}

// Phase is the round state as seen by the platform.
type Phase string

const (
	PhaseReady    Phase = "ready" // waiting for the first reveal
	PhasePlaying  Phase = "playing"
	PhaseWon      Phase = "won"
	PhaseLost     Phase = "lost"
	PhaseTooSmall Phase = "paused_small_window"
)

// Snapshot captures the complete round state for tests and debugging.
type Snapshot struct {
	Phase          Phase
	Seconds        int
	Cursor         Cell
	FlagsRemaining int
	Board          BoardSnapshot
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhaseTooSmall
	case g.won:
		phase = PhaseWon
	case g.lost:
		phase = PhaseLost
	case g.board.FirstClick():
		phase = PhaseReady
	}

	return Snapshot{
		Phase:          phase,
		Seconds:        g.seconds,
		Cursor:         g.cursor,
		FlagsRemaining: g.board.FlagsRemaining(),
		Board:          g.board.Snapshot(),
	}
}
