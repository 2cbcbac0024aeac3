package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// menuStyles groups the lipgloss styles used by the preset picker.
type menuStyles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	box      lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return menuStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		subtitle: r.NewStyle().Foreground(lipgloss.Color("241")),
		item:     r.NewStyle().Padding(0, 1),
		selected: r.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		box:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// helpStyles returns help footer styles bound to r.
func helpStyles(r *lipgloss.Renderer) help.Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	keyStyle := r.NewStyle().Foreground(lipgloss.Color("245"))
	descStyle := r.NewStyle().Foreground(lipgloss.Color("241"))
	sepStyle := r.NewStyle().Foreground(lipgloss.Color("238"))
	return help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}

// MenuModel is the Bubble Tea model for the board preset picker.
type MenuModel struct {
	presets  []config.Preset
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	styles   menuStyles
	quitting bool
	selected *config.Preset
}

// NewMenuModel creates a menu over the configured presets, starting on the default.
func NewMenuModel(presets config.MinesweeperConfig, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		presets: presets.Presets,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		styles:  newMenuStyles(nil),
	}
	for i, p := range m.presets {
		if p.ID == presets.Default {
			m.cursor = i
			break
		}
	}
	return m
}

// WithRenderer returns a copy of m that styles output for r.
func (m MenuModel) WithRenderer(r *lipgloss.Renderer) MenuModel {
	m.styles = newMenuStyles(r)
	m.help.Styles = helpStyles(r)
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if len(m.presets) > 0 {
			selected := m.presets[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		line := fmt.Sprintf("%-14s %3dx%-3d %4d mines", p.Title, p.Rows, p.Cols, p.Mines)
		if i == m.cursor {
			lines = append(lines, m.styles.selected.Render(line))
		} else {
			lines = append(lines, m.styles.item.Render(line))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render("M I N E S W E E P E R"),
		m.styles.subtitle.Render("Pick a board"),
		"",
		m.styles.box.Render(strings.Join(lines, "\n")),
		"",
		m.help.View(m.keys),
	)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m MenuModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset config.Preset
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the preset picker and returns the selection.
func RunMenu(presets config.MinesweeperConfig, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(presets, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{
		Preset: *m.Selected(),
		Config: m.Config(),
	}, nil
}
