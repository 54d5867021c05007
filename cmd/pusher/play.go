package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-pusher/internal/config"
	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/game"
	"github.com/vovakirdan/tile-pusher/internal/platform/tui"
	"github.com/vovakirdan/tile-pusher/internal/storage"
)

var (
	flagLevel int
	flagWatch bool
	flagPace  string
	flagTheme string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start a play session. Without --level a level picker is shown.

Controls:
  Arrows/WASD  - Move (push a pillar by walking into it)
  R            - Restart the level
  N            - Skip to the next level
  Tab          - Toggle the editor
  ?            - Full help
  Esc/Ctrl+C   - Quit

Editor:
  Arrows/WASD  - Move the cursor
  Space        - Place the current tile
  X            - Erase
  L            - Next layer
  [ / ]        - Previous / next tile
  Ctrl+S       - Save the level file

Pace options:
  relaxed  - Slower player and pillars
  normal   - Configured speeds
  brisk    - Faster player and pillars

Examples:
  pusher play
  pusher play --level 3
  pusher play --level 1 --watch
  pusher play --pace brisk --theme mono`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start at (0 = pick from a menu)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file changes on disk")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: relaxed, normal, brisk")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme: default, mono")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("pusher")
	defer closeLog()

	cfg := loadConfig(logger)
	if err := config.ApplyPace(&cfg, config.PacePreset(flagPace)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	theme := tui.ThemeByName(flagTheme)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - runs are not recorded
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	start := flagLevel
	if start > 0 {
		if err := play(cfg, start, rt, theme, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Menu loop
	for {
		entries := game.Catalog(cfg, logger)
		result, err := tui.RunMenu(entries, store, theme, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rt = result.Config
		if result.Quit {
			return
		}

		if result.WantsRuns {
			goBack, err := tui.RunRunBoard(store, cfg.Transition.MaxLevels, theme, rt.ScreenW, rt.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue // Back to menu
			}
			return
		}

		if err := play(cfg, result.LevelID, rt, theme, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
}

func play(cfg config.GameConfig, start int, rt core.RuntimeConfig, theme tui.Theme, store *storage.Store, logger *log.Logger) error {
	state, err := game.New(cfg, game.Options{Logger: logger, Start: start})
	if err != nil {
		return err
	}
	return tui.Run(state, cfg, tui.Options{
		Store:   store,
		Logger:  logger,
		Runtime: rt,
		Theme:   theme,
		Watch:   flagWatch,
	})
}
