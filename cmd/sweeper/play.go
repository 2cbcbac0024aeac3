package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var (
	flagRows  int
	flagCols  int
	flagMines int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Play a board preset, or a custom board given by --rows, --cols and --mines.
Flags override the matching field of the preset.

Controls:
  Arrows/hjkl/WASD  - Move cursor
  Space/Enter       - Reveal (or left click)
  F                 - Flag (or right click)
  R                 - New round
  ?                 - Toggle help
  Ctrl+S            - Save screenshot to ~/.sweeper/screenshots
  Q/Esc             - Quit

Examples:
  sweeper play
  sweeper play expert
  sweeper play beginner --mines 20
  sweeper play --rows 24 --cols 60 --mines 300 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides preset)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (overrides preset)")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Mine count (overrides preset)")
}

func runPlay(cmd *cobra.Command, args []string) {
	presets := loadPresets()

	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	preset, err := presets.Lookup(id)
	if err != nil {
		fail("%v\nRun 'sweeper presets' to see available boards.", err)
	}

	flags := cmd.Flags()
	if flags.Changed("rows") || flags.Changed("cols") || flags.Changed("mines") {
		rows, cols, mines := preset.Rows, preset.Cols, preset.Mines
		if flags.Changed("rows") {
			rows = flagRows
		}
		if flags.Changed("cols") {
			cols = flagCols
		}
		if flags.Changed("mines") {
			mines = flagMines
		}
		if preset, err = config.Custom(rows, cols, mines); err != nil {
			fail("%v", err)
		}
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if _, err := startGame(preset, logger); err != nil {
		closeLog()
		fail("%v", err)
	}
}

// startGame plays preset in the alternate screen until the player quits or goes back.
func startGame(preset config.Preset, logger *log.Logger) (tui.Result, error) {
	game, err := minesweeper.New(preset.Rows, preset.Cols, preset.Mines,
		minesweeper.WithTitle(preset.Title),
		minesweeper.WithLogger(logger.With("preset", preset.ID)),
	)
	if err != nil {
		return tui.Result{}, fmt.Errorf("cannot create board: %w", err)
	}
	logger.Info("game started", "preset", preset.ID, "rows", preset.Rows, "cols", preset.Cols, "mines", preset.Mines)

	result, err := tui.Run(game, terminalConfig(), logger)
	if err != nil {
		return result, fmt.Errorf("running game: %w", err)
	}
	logger.Info("game closed", "preset", preset.ID, "seconds", result.State.Seconds, "won", result.State.Won)
	return result, nil
}
