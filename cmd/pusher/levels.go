package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-pusher/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Long:  `Loads every level of the configured sequence and shows its size and plate count.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("levels")
	defer closeLog()

	cfg := loadConfig(logger)
	entries := game.Catalog(cfg, logger)

	if len(entries) == 0 {
		fmt.Println("No levels configured.")
		return
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-3s  %-9s  %-6s  %-7s  %-8s  %s\n", "ID", "Size", "Plates", "Portals", "Warnings", "File")
	fmt.Printf("  %-3s  %-9s  %-6s  %-7s  %-8s  %s\n", "--", "----", "------", "-------", "--------", "----")

	for _, e := range entries {
		if !e.OK() {
			fmt.Printf("  %-3d  %s\n", e.ID, e.Err)
			continue
		}
		size := fmt.Sprintf("%dx%d", e.Columns, e.Rows)
		fmt.Printf("  %-3d  %-9s  %-6d  %-7d  %-8d  %s\n", e.ID, size, e.Plates, e.Portals, e.Warnings, e.Path)
	}

	fmt.Println()
	fmt.Println("Run 'pusher play --level <id>' to play a level.")
}
