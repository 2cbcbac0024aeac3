// sweeper is a terminal Minesweeper, playable locally or over SSH.
//
// Usage:
//
//	sweeper presets          - List board presets
//	sweeper play [preset]    - Play a board
//	sweeper menu             - Pick boards interactively
//	sweeper serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible mine placement
//	--config <path>      - Load presets from a YAML file
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `sweeper is a terminal Minesweeper. The first cell you reveal and its
neighbours never hold a mine.

Available commands:
  presets  - Show the configured boards
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play

Examples:
  sweeper presets
  sweeper play expert
  sweeper play --rows 20 --cols 40 --mines 150
  sweeper menu --config ./boards.yaml
  sweeper serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to presets YAML (default: search ~/.sweeper/configs, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the logger for a command. Without --log-file it writes to
// fallback, which local play sets to io.Discard because the TUI owns the terminal.
// The returned close function must be called before exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sweeper",
	})
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// loadPresets loads presets from --config or the default search path.
func loadPresets() config.MinesweeperConfig {
	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// terminalConfig sizes the runtime config from the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
