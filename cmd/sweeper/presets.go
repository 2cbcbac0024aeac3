package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Long: `Shows the board presets from the loaded config.

Presets are read from --config, ~/.sweeper/configs/minesweeper.yaml or
./configs/minesweeper.yaml, falling back to the built-in boards.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	cfg := loadPresets()

	maxIDLen := 2 // "ID" header
	for _, p := range cfg.Presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Println("Board presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %5s  %s\n", maxIDLen, "ID", "Size", "Mines", "Title")
	fmt.Printf("  %-*s  %-7s  %5s  %s\n", maxIDLen, "--", "----", "-----", "-----")

	for _, p := range cfg.Presets {
		marker := ""
		if p.ID == cfg.Default {
			marker = " (default)"
		}
		size := fmt.Sprintf("%dx%d", p.Rows, p.Cols)
		fmt.Printf("  %-*s  %-7s  %5d  %s%s\n", maxIDLen, p.ID, size, p.Mines, p.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play <id>' to play a board.")
}
