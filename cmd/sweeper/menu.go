package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board.
Press Esc or B during a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play board
  Q/Esc        - Quit

Examples:
  sweeper menu
  sweeper menu --config ./boards.yaml
  sweeper menu --log-file sweeper.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	presets := loadPresets()

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	for {
		choice, err := tui.RunMenu(presets, terminalConfig())
		if err != nil {
			closeLog()
			fail("%v", err)
		}
		if choice.Quit {
			return
		}

		result, err := startGame(choice.Preset, logger)
		if err != nil {
			closeLog()
			fail("%v", err)
		}
		if !result.BackToMenu {
			return
		}
	}
}
