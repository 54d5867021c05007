package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-pusher/internal/platform/tui"
	"github.com/vovakirdan/tile-pusher/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show best runs",
	Long: `Without a level, show a summary of every level played so far.
With a level, show its ten best runs (fewest moves, then fastest).

Examples:
  pusher stats
  pusher stats 2
  pusher stats --clear 2
  pusher stats -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in the terminal UI")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the level")
}

func runStats(_ *cobra.Command, args []string) {
	levelID := 0
	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", args[0])
			os.Exit(1)
		}
		levelID = id
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs of level %d.\n", levelID)
	case flagInteractive:
		runStatsBoard(store)
	case levelID > 0:
		printTopRuns(store, levelID)
	default:
		printSummary(store)
	}
}

func runStatsBoard(store *storage.Store) {
	logger, closeLog := newLogger("stats")
	defer closeLog()
	cfg := loadConfig(logger)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	if _, err := tui.RunRunBoard(store, cfg.Transition.MaxLevels, tui.DefaultTheme(), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.AllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Best runs")
	fmt.Println()
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pusher play' and reach a portal to record one!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-4s  %-5s  %-6s  %-8s  %s\n", "Level", "Runs", "Moves", "Pushes", "Fastest", "Last played")
	fmt.Printf("  %-5s  %-4s  %-5s  %-6s  %-8s  %s\n", "-----", "----", "-----", "------", "-------", "-----------")
	for _, st := range all {
		fmt.Printf("  %-5d  %-4d  %-5d  %-6d  %-8s  %s\n",
			st.LevelID, st.Runs, st.FewestMoves, st.FewestPush,
			st.Fastest.Truncate(100*time.Millisecond), st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printTopRuns(store *storage.Store, levelID int) {
	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best runs - Level %d\n", levelID)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pusher play --level %d' to set the first one!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-6s  %-8s  %-8s  %s\n", "Rank", "Moves", "Pushes", "Restarts", "Time", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "------", "--------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-6d  %-8d  %-8s  %s\n",
			i+1, r.Moves, r.Pushes, r.Restarts,
			r.Duration.Truncate(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
