package minesweeper

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/dependencies/random"
)

// ID is the identifier used for logging and screenshots.
const ID = "minesweeper"

// Game drives a Board from platform input. It owns the cursor, the elapsed
// round clock and a per-cell view grid that is refreshed from the board after
// every mutating call. A won or lost round ignores further reveal and flag
// input until a new round starts.
type Game struct {
	title  string
	board  *Board
	rng    random.Random // fixed source, set by WithRandom
	logger *log.Logger

	cursor   Cell
	seconds  int
	running  bool // round clock is ticking
	won      bool
	lost     bool
	exploded Cell

	view [][]CellState

	screenW  int
	screenH  int
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTitle sets the name shown in the HUD (e.g. the preset title).
func WithTitle(title string) Option {
	return func(g *Game) {
		g.title = title
	}
}

// WithRandom pins the mine placement source, ignoring RuntimeConfig seeds.
func WithRandom(r random.Random) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// New creates a game for a rows x cols field with the given mine count.
// It fails when the dimensions or mine count are not playable.
func New(rows, cols, mines int, opts ...Option) (*Game, error) {
	g := &Game{
		title:  "Minesweeper",
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	board, err := NewBoard(rows, cols, mines, g.rng)
	if err != nil {
		return nil, err
	}
	g.board = board
	g.newRound()
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Board exposes the underlying minefield for read-only inspection.
func (g *Game) Board() *Board {
	return g.board
}

// Cursor returns the cell under the keyboard cursor.
func (g *Game) Cursor() Cell {
	return g.cursor
}

// Reset starts a new round and adapts the layout to the screen in cfg.
// Unless a fixed source was configured, mines are drawn from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.rng == nil {
		g.board.rng = random.New(cfg.Seed)
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newRound()
}

// newRound is the manual "new round" control: a fresh board and a stopped clock.
func (g *Game) newRound() {
	g.board.Reset()
	g.cursor = Cell{Row: g.board.Rows() / 2, Col: g.board.Cols() / 2}
	g.seconds = 0
	g.running = false
	g.won = false
	g.lost = false
	g.exploded = Cell{}
	g.refreshView()
}

// Resize records the screen dimensions. It never touches the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// finished reports whether the round has ended and input is frozen.
func (g *Game) finished() bool {
	return g.won || g.lost
}

// Step applies one batch of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.newRound()
		g.logger.Debug("new round", "rows", g.board.Rows(), "cols", g.board.Cols(), "mines", g.board.MineCount())
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	changed := false
	switch {
	case in.Has(core.ActionUp):
		changed = g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		changed = g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		changed = g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		changed = g.moveCursor(0, 1)
	}

	switch {
	case in.Has(core.ActionReveal):
		changed = g.reveal(g.cursor) || changed
	case in.Has(core.ActionFlag):
		changed = g.flag(g.cursor) || changed
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// Click handles pointer input at screen position (x, y). The primary button
// reveals, the secondary button toggles a flag. Clicks outside the grid are ignored.
func (g *Game) Click(x, y int, primary bool) core.StepResult {
	cell, ok := g.CellAt(x, y)
	if !ok || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.cursor = cell
	var changed bool
	if primary {
		changed = g.reveal(cell)
	} else {
		changed = g.flag(cell)
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

// Tick advances the round clock by one second while a round is running.
// It returns true when the displayed time changed.
func (g *Game) Tick() bool {
	if !g.running {
		return false
	}
	g.seconds++
	return true
}

func (g *Game) moveCursor(dr, dc int) bool {
	next := Cell{
		Row: core.Clamp(g.cursor.Row+dr, 0, g.board.Rows()-1),
		Col: core.Clamp(g.cursor.Col+dc, 0, g.board.Cols()-1),
	}
	if next == g.cursor {
		return false
	}
	g.cursor = next
	return true
}

func (g *Game) reveal(c Cell) bool {
	if g.finished() {
		return false
	}

	before := g.board.revealed.Size()
	wasFirst := g.board.FirstClick()
	if err := g.board.RevealCell(c); err != nil {
		g.logger.Error("reveal rejected", "cell", c, "error", err)
		return false
	}

	if wasFirst && !g.board.FirstClick() {
		g.running = true
		g.logger.Debug("round started", "cell", c, "rows", g.board.Rows(), "cols", g.board.Cols(), "mines", g.board.MineCount())
	}

	switch {
	case g.board.GameOver():
		g.lost = true
		g.running = false
		g.exploded = c
		g.logger.Info("mine revealed", "cell", c, "seconds", g.seconds)
	case g.board.CheckWin():
		g.won = true
		g.running = false
		g.logger.Info("board cleared", "seconds", g.seconds, "mines", g.board.MineCount())
	}

	g.refreshView()
	return g.board.revealed.Size() != before
}

func (g *Game) flag(c Cell) bool {
	if g.finished() {
		return false
	}

	was := g.board.IsFlagged(c)
	if err := g.board.ToggleFlag(c); err != nil {
		g.logger.Error("flag rejected", "cell", c, "error", err)
		return false
	}
	g.refreshView()
	return g.board.IsFlagged(c) != was
}

// State returns the current round state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Seconds:  g.seconds,
		GameOver: g.finished(),
		Won:      g.won,
	}
}
