package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-pusher/internal/game"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

var flagWrite bool

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file",
	Long: `Load a level file and report the tokens the parser had to recover from,
the number of pressure plates and the level extent. With --write the level
is saved back in normalized form.

Examples:
  pusher check levels/level_01.txt
  pusher check --write levels/level_02.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagWrite, "write", false, "Save the level back normalized")
}

func runCheck(_ *cobra.Command, args []string) {
	path := args[0]
	logger, closeLog := newLogger("check")
	defer closeLog()

	cfg := loadConfig(logger)
	lvl, err := level.Load(path, cfg.Sheet.Sheet(), game.LevelOptions(cfg, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kinds := game.NewKinds(cfg.Tiles)
	extent := lvl.Extent()

	fmt.Printf("Level %s\n", path)
	fmt.Println()
	fmt.Printf("  Grid:     %dx%d cells, %d layers\n", lvl.Columns(), lvl.Rows(), lvl.Layers())
	fmt.Printf("  Extent:   %.0fx%.0f\n", extent.X, extent.Y)
	fmt.Printf("  Plates:   %d\n", lvl.CountCells(kinds.Plate))
	fmt.Printf("  Pushable: %d\n", lvl.CountCells(kinds.Pushable))
	fmt.Printf("  Portals:  %d\n", lvl.CountCells(kinds.PortalRight))

	warnings := lvl.Warnings()
	fmt.Println()
	if len(warnings) == 0 {
		fmt.Println("No warnings.")
	} else {
		fmt.Printf("%d warning(s):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  %s\n", w)
		}
	}

	if flagWrite {
		if err := lvl.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSaved %s\n", path)
	}
}
