package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/dependencies/mocks"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

// newTestModel returns an initialized model on an 80x25 terminal playing a
// 1x7 board whose mines land on (0,1) and (0,6) after the first reveal at (0,3).
func newTestModel(t *testing.T) Model {
	t.Helper()
	rng := mocks.NewMockRandom()
	rng.QueueIntn(1, 2)

	game, err := minesweeper.New(1, 7, 2, minesweeper.WithRandom(rng))
	require.NoError(t, err)

	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25}, nil)
	require.NotNil(t, m.Init())
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelKeyboardRound(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, spaceKey)
	assert.Equal(t, []minesweeper.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 6}}, m.game.Board().Mines())
	assert.False(t, m.State().GameOver)

	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, spaceKey)

	assert.True(t, m.State().GameOver)
	assert.False(t, m.State().Won)

	m, _ = update(t, m, runeKey('r'))
	assert.False(t, m.State().GameOver)
	assert.True(t, m.game.Board().FirstClick())
}

func TestModelMouse(t *testing.T) {
	m := newTestModel(t)

	// the 1x7 grid starts at column 29 on row 3; each cell is three columns wide
	right := tea.MouseMsg{X: 30, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	m, _ = update(t, m, right)
	assert.True(t, m.game.Board().IsFlagged(minesweeper.Cell{Row: 0, Col: 0}))

	release := tea.MouseMsg{X: 39, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, release)
	assert.True(t, m.game.Board().FirstClick(), "releases are ignored")

	left := tea.MouseMsg{X: 39, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, left)
	assert.True(t, m.game.Board().IsRevealed(minesweeper.Cell{Row: 0, Col: 3}))
}

func TestModelClock(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "the clock loop keeps running before the first reveal")
	assert.Equal(t, 0, m.State().Seconds)

	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 2, m.State().Seconds)

	m, cmd = update(t, m, TickMsg{ClockID: 7})
	assert.Nil(t, cmd, "ticks from another game are dropped")
	assert.Equal(t, 2, m.State().Seconds)
}

func TestModelResizeKeepsRound(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	before := m.game.Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, before.Board, m.game.Snapshot().Board)
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t)

	back, cmd := update(t, m, escKey)
	assert.True(t, back.BackToMenu())
	assert.NotNil(t, cmd, "a standalone game exits on back")

	m.embedded = true
	back, cmd = update(t, m, escKey)
	assert.True(t, back.BackToMenu())
	assert.Nil(t, cmd)

	quit, cmd := update(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Equal(t, "", quit.View())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Minesweeper")
	assert.Contains(t, view, "Mines: 002")
	assert.Contains(t, view, "reveal")

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "screenshot")
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel(config.DefaultMinesweeperConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, log.New(io.Discard))
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(SessionModel)
	require.True(t, ok)
	return model, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)
	assert.Contains(t, m.View(), "Beginner")

	m, _ = updateSession(t, m, runeKey('j'))
	m, cmd := updateSession(t, m, enterKey)
	require.True(t, m.InGame())
	assert.NotNil(t, cmd, "starting a game starts its clock")
	assert.Equal(t, 16, m.game.game.Board().Rows())
	assert.Equal(t, 16, m.game.game.Board().Cols())
	assert.Equal(t, "Intermediate", m.game.game.Title())

	m, cmd = updateSession(t, m, TickMsg{ClockID: 1})
	assert.NotNil(t, cmd)

	m, _ = updateSession(t, m, escKey)
	assert.False(t, m.InGame())
	assert.Contains(t, m.View(), "Pick a board")

	// a tick left over from the closed game ends there
	m, cmd = updateSession(t, m, TickMsg{ClockID: 1})
	assert.Nil(t, cmd)

	m, _ = updateSession(t, m, enterKey)
	require.True(t, m.InGame())
	assert.Equal(t, 2, m.game.clockID)
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)

	m, cmd := updateSession(t, m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.View())

	m = newTestSession(t)
	m, _ = updateSession(t, m, enterKey)
	require.True(t, m.InGame())
	m, cmd = updateSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.View())
}
