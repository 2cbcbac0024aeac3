package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

// footerHeight is the number of lines taken by the help footer.
const footerHeight = 1

// Model is the Bubble Tea model for playing rounds on one board.
type Model struct {
	game    *minesweeper.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	palette Palette
	logger  *log.Logger

	// screenshotDir enables ctrl+s when non-empty.
	screenshotDir string

	clockID    int
	state      core.GameState
	quitting   bool
	backToMenu bool
	embedded   bool // running inside a SessionModel; back does not quit the program
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *minesweeper.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		palette: NewPalette(nil),
		logger:  logger,
	}
	m.help.Width = cfg.ScreenW
	return m
}

// WithRenderer returns a copy of m that styles output for r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.palette = NewPalette(r)
	m.help.Styles = helpStyles(r)
	return m
}

// WithScreenshots returns a copy of m that saves ctrl+s screenshots to dir.
func (m Model) WithScreenshots(dir string) Model {
	m.screenshotDir = dir
	return m
}

// Init starts the first round and the round clock.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.layoutConfig())
	return tickCmd(m.clockID)
}

// layoutConfig is the runtime config minus the space reserved for the footer.
func (m Model) layoutConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	result := m.game.Step(core.FrameOf(action))
	m.state = result.State
	return m, nil
}

// handleMouse maps presses to reveal (left button) and flag (right button).
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.state = m.game.Click(msg.X, msg.Y, true).State
	case tea.MouseButtonRight:
		m.state = m.game.Click(msg.X, msg.Y, false).State
	}
	return m, nil
}

// handleResize adapts the layout. The round in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	layout := m.layoutConfig()
	m.screen.Resize(layout.ScreenW, layout.ScreenH)
	m.game.Resize(layout.ScreenW, layout.ScreenH)
	return m, nil
}

// handleTick advances the round clock and schedules the next tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.quitting || msg.ClockID != m.clockID {
		return m, nil
	}
	m.game.Tick()
	m.state = m.game.State()
	return m, tickCmd(m.clockID)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the round and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the round state as of the last update.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the preset menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result reports how a local game ended.
type Result struct {
	BackToMenu bool
	State      core.GameState
}

// Run plays game in the alternate screen until the user quits or goes back.
// Screenshots are written under ~/.sweeper/screenshots.
func Run(game *minesweeper.Game, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	model := NewModel(game, cfg, logger)
	if home, err := os.UserHomeDir(); err == nil {
		model = model.WithScreenshots(filepath.Join(home, ".sweeper", "screenshots"))
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{BackToMenu: m.BackToMenu(), State: m.game.State()}, nil
}
