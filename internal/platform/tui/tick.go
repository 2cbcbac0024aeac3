// Package tui provides the Bubble Tea integration for the sweeper.
// It handles the terminal UI loop, input mapping and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is the resolution of the round clock.
const clockInterval = time.Second

// TickMsg is sent once per clockInterval to advance the round clock.
// ClockID identifies the game model that scheduled it, so a stale tick from
// a closed game cannot start a second clock loop in the next one.
type TickMsg struct {
	ClockID int
	Time    time.Time
}

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd(clockID int) tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return TickMsg{ClockID: clockID, Time: t}
	})
}
