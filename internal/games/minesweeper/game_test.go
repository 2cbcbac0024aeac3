package minesweeper

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/dependencies/mocks"
)

// newPocketGame returns a 1x7 round whose first reveal at the starting cursor
// (0,3) places mines on (0,1) and (0,6), leaving (0,0) hidden behind a mine.
//
//	. * 1 _ _ 1 *
func newPocketGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	rng := mocks.NewMockRandom()
	// candidates (0,0) (0,1) (0,5) (0,6): pick index 1, then index 1+2 of the rest
	rng.QueueIntn(1, 2)

	g, err := New(1, 7, 2, append([]Option{WithRandom(rng)}, opts...)...)
	require.NoError(t, err)
	require.Equal(t, Cell{Row: 0, Col: 3}, g.Cursor())
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for _, a := range actions {
		res = g.Step(core.FrameOf(a))
	}
	return res
}

func TestNewRejectsUnplayableBoards(t *testing.T) {
	_, err := New(0, 9, 10)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = New(9, 9, 80)
	assert.ErrorIs(t, err, ErrTooManyMines)
}

func TestFirstRevealStartsClock(t *testing.T) {
	g := newPocketGame(t)

	assert.Equal(t, PhaseReady, g.Snapshot().Phase)
	assert.False(t, g.Tick(), "clock must not run before the first reveal")

	res := press(g, core.ActionReveal)
	require.True(t, res.Changed)
	assert.Equal(t, []Cell{{0, 1}, {0, 6}}, g.Board().Mines())
	assert.Equal(t, []Cell{{0, 2}, {0, 3}, {0, 4}, {0, 5}}, g.Board().Revealed())
	assert.Equal(t, PhasePlaying, g.Snapshot().Phase)

	assert.True(t, g.Tick())
	assert.True(t, g.Tick())
	assert.Equal(t, 2, g.State().Seconds)
	assert.False(t, g.State().GameOver)
}

func TestFlagBeforeFirstRevealKeepsClockStopped(t *testing.T) {
	g := newPocketGame(t)

	res := press(g, core.ActionFlag)
	assert.True(t, res.Changed)
	assert.True(t, g.Board().IsFlagged(Cell{0, 3}))
	assert.True(t, g.Board().FirstClick())
	assert.False(t, g.Tick())
}

func TestWinFreezesRound(t *testing.T) {
	g := newPocketGame(t)
	press(g, core.ActionReveal)
	g.Tick()

	res := press(g, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionReveal)
	require.True(t, res.Changed)

	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.Equal(t, 1, res.State.Seconds)
	assert.Equal(t, PhaseWon, g.Snapshot().Phase)
	assert.False(t, g.Board().GameOver(), "a win leaves the board latch alone")

	assert.False(t, g.Tick(), "clock stops on win")
	before := g.Snapshot()
	assert.False(t, g.reveal(Cell{0, 1}))
	assert.False(t, g.flag(Cell{0, 6}))
	assert.Equal(t, before, g.Snapshot(), "board input is ignored after a win")
}

func TestLossRevealsUnflaggedMines(t *testing.T) {
	g := newPocketGame(t)
	press(g, core.ActionReveal)
	g.Tick()

	res := press(g, core.ActionLeft, core.ActionLeft, core.ActionReveal)
	require.True(t, res.Changed)

	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)
	assert.Equal(t, PhaseLost, g.Snapshot().Phase)
	assert.False(t, g.Tick(), "clock stops on loss")
	assert.Equal(t, 1, g.State().Seconds)

	assert.Equal(t, CellState{View: ViewExploded}, g.View(Cell{0, 1}))
	assert.Equal(t, CellState{View: ViewMine}, g.View(Cell{0, 6}))
	assert.Equal(t, CellState{View: ViewHidden}, g.View(Cell{0, 0}))
	assert.Equal(t, CellState{View: ViewRevealed, Count: 1}, g.View(Cell{0, 2}))
	assert.Equal(t, CellState{View: ViewRevealed, Count: 0}, g.View(Cell{0, 3}))
}

func TestLossKeepsFlagsAndMarksWrongOnes(t *testing.T) {
	g := newPocketGame(t)
	press(g, core.ActionReveal)

	// flag the far mine and the safe pocket cell, then step on (0,1)
	press(g, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionFlag)
	press(g, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionFlag)
	require.Equal(t, []Cell{{0, 0}, {0, 6}}, g.Board().Flags())
	require.Equal(t, 0, g.Snapshot().FlagsRemaining)

	press(g, core.ActionRight, core.ActionReveal)

	assert.Equal(t, CellState{View: ViewExploded}, g.View(Cell{0, 1}))
	assert.Equal(t, CellState{View: ViewFlagged}, g.View(Cell{0, 6}), "a correct flag is left in place")
	assert.Equal(t, CellState{View: ViewWrongFlag}, g.View(Cell{0, 0}))
}

func TestRestartStartsNewRound(t *testing.T) {
	g := newPocketGame(t)
	press(g, core.ActionReveal)
	g.Tick()
	press(g, core.ActionLeft, core.ActionLeft, core.ActionReveal)
	require.Equal(t, PhaseLost, g.Snapshot().Phase)

	res := press(g, core.ActionRestart)

	assert.True(t, res.Changed)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Seconds)

	snap := g.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.Equal(t, Cell{0, 3}, snap.Cursor)
	assert.Equal(t, 2, snap.FlagsRemaining)
	assert.Empty(t, snap.Board.Revealed)
	assert.Empty(t, snap.Board.Mines)
	assert.Equal(t, CellState{View: ViewHidden}, g.View(Cell{0, 1}))
}

func TestCursorIsClamped(t *testing.T) {
	g := newPocketGame(t)

	res := press(g, core.ActionUp)
	assert.False(t, res.Changed)
	assert.Equal(t, Cell{0, 3}, g.Cursor())

	press(g, core.ActionRight, core.ActionRight, core.ActionRight)
	res = press(g, core.ActionRight)
	assert.False(t, res.Changed)
	assert.Equal(t, Cell{0, 6}, g.Cursor())

	res = press(g, core.ActionDown)
	assert.False(t, res.Changed)
	assert.Equal(t, Cell{0, 6}, g.Cursor())
}

func TestRejectedMovesDoNotChange(t *testing.T) {
	g := newPocketGame(t)
	press(g, core.ActionReveal)

	res := press(g, core.ActionReveal)
	assert.False(t, res.Changed, "revealing a revealed cell")

	res = press(g, core.ActionFlag)
	assert.False(t, res.Changed, "flagging a revealed cell")
}

func TestCellAtAndClick(t *testing.T) {
	g := newPocketGame(t)
	g.Resize(80, 24)

	// 1x7 grid framed in a 23x3 box at (28,2); cells start at (29,3), three columns each
	tests := []struct {
		x, y     int
		expected Cell
		ok       bool
	}{
		{29, 3, Cell{0, 0}, true},
		{31, 3, Cell{0, 0}, true},
		{32, 3, Cell{0, 1}, true},
		{49, 3, Cell{0, 6}, true},
		{28, 3, Cell{}, false},
		{50, 3, Cell{}, false},
		{30, 2, Cell{}, false},
		{30, 4, Cell{}, false},
	}
	for _, tc := range tests {
		cell, ok := g.CellAt(tc.x, tc.y)
		assert.Equal(t, tc.ok, ok, "CellAt(%d, %d)", tc.x, tc.y)
		assert.Equal(t, tc.expected, cell, "CellAt(%d, %d)", tc.x, tc.y)
	}

	res := g.Click(30, 3, false)
	assert.True(t, res.Changed)
	assert.True(t, g.Board().IsFlagged(Cell{0, 0}))
	assert.Equal(t, Cell{0, 0}, g.Cursor())

	res = g.Click(39, 3, true)
	assert.True(t, res.Changed)
	assert.True(t, g.Board().IsRevealed(Cell{0, 3}))

	res = g.Click(10, 10, true)
	assert.False(t, res.Changed, "clicks outside the grid are ignored")
}

func TestRender(t *testing.T) {
	g := newPocketGame(t, WithTitle("Pocket"))
	g.Resize(80, 24)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Pocket")
	assert.Contains(t, screen.Row(1), "Mines: 002")
	assert.Contains(t, screen.Row(1), "Time: 000")
	assert.Equal(t, '┌', screen.Get(28, 2))
	assert.Equal(t, '·', screen.Get(30, 3))
	assert.Equal(t, '[', screen.Get(38, 3))
	assert.Equal(t, ']', screen.Get(40, 3))
	assert.Contains(t, screen.Row(5), "Reveal any cell to start")

	press(g, core.ActionReveal)
	g.Tick()
	press(g, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionFlag)
	g.Render(screen)

	assert.Contains(t, screen.Row(1), "Mines: 001")
	assert.Contains(t, screen.Row(1), "Time: 001")
	assert.Equal(t, '1', screen.Get(36, 3))
	assert.Equal(t, numberColors[1], screen.GetCell(36, 3).Color)
	assert.Equal(t, ' ', screen.Get(39, 3))
	assert.Equal(t, '⚑', screen.Get(48, 3))

	press(g, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionReveal)
	g.Render(screen)

	assert.Equal(t, '*', screen.Get(33, 3))
	assert.Equal(t, core.ColorBrightYellow, screen.GetCell(33, 3).Color)
	assert.Contains(t, screen.Row(5), "BOOM!")
	assert.NotContains(t, screen.Row(3), "[", "no cursor once the round is over")
}

func TestTooSmallScreenPausesInput(t *testing.T) {
	g := newPocketGame(t)
	g.Resize(20, 24)

	assert.Equal(t, PhaseTooSmall, g.Snapshot().Phase)
	res := press(g, core.ActionReveal)
	assert.False(t, res.Changed)
	assert.True(t, g.Board().FirstClick())

	screen := core.NewScreen(20, 24)
	g.Render(screen)
	assert.Contains(t, screen.Row(12), "Window too small")
	assert.Contains(t, screen.Row(13), "Need 23x6")

	g.Resize(80, 24)
	assert.Equal(t, PhaseReady, g.Snapshot().Phase)
}

func TestResizeKeepsRound(t *testing.T) {
	g := newPocketGame(t)
	g.Resize(80, 24)
	press(g, core.ActionReveal)
	before := g.Snapshot()

	g.Resize(120, 40)

	assert.Equal(t, before, g.Snapshot())
}

func TestResetSeedIsDeterministic(t *testing.T) {
	play := func() []Cell {
		g, err := New(9, 9, 10)
		require.NoError(t, err)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
		press(g, core.ActionReveal)
		return g.Board().Mines()
	}

	first := play()
	assert.Len(t, first, 10)
	assert.Equal(t, first, play())
}

func TestRoundEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := newPocketGame(t, WithLogger(logger))
	press(g, core.ActionReveal)
	press(g, core.ActionLeft, core.ActionLeft, core.ActionReveal)

	out := buf.String()
	assert.Contains(t, out, "round started")
	assert.Contains(t, out, "mine revealed")
}
