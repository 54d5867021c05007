// pusher is a tile-pushing puzzle game and level editor for the terminal.
//
// Usage:
//
//	pusher play              - Pick a level and play it
//	pusher play --level 2    - Play a level directly
//	pusher levels            - List the configured levels
//	pusher check <file>      - Validate a level file
//	pusher stats [level]     - Show best runs
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--config <path>    - Use a custom config YAML
//	--db <path>        - Set database path (default: ~/.pusher/runs.db)
//	--log-file <path>  - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-pusher/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pusher",
	Short: "Tile Pusher - push pillars onto plates in your terminal",
	Long: `Tile Pusher is a grid puzzle: push every pillar onto a pressure
plate, then step through the portal to reach the next level.
Press Tab in a level to switch to the editor.

Available commands:
  play     - Play a level (picker menu when no level is given)
  levels   - List the configured levels
  check    - Validate a level file
  stats    - Show best runs per level

Examples:
  pusher play
  pusher play --level 2 --watch
  pusher levels
  pusher check levels/level_01.txt
  pusher stats 1`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pusher/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
}

// newLogger returns the logger for a command and a function closing its
// output. Without --log-file logs are discarded; the TUI owns the terminal.
func newLogger(prefix string) (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// loadConfig loads the game configuration or exits.
func loadConfig(logger *log.Logger) config.GameConfig {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source)
	return cfg
}
