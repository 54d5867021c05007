package game

import (
	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tile-pusher/internal/config"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

// LoaderFunc loads the level with the given id.
type LoaderFunc func(id int) (*level.Level, error)

// LevelOptions converts configuration to level parsing options.
func LevelOptions(cfg config.GameConfig, logger *log.Logger) level.Options {
	return level.Options{
		Layers:           cfg.Grid.Layers,
		DecorationLayers: cfg.Grid.DecorationLayers,
		FixedColumns:     cfg.Grid.FixedColumns,
		FixedRows:        cfg.Grid.FixedRows,
		MaxColumns:       cfg.Grid.MaxColumns,
		MaxRows:          cfg.Grid.MaxRows,
		Logger:           logger,
	}
}

// FileLoader loads levels from the configured directory and pattern.
func FileLoader(cfg config.GameConfig, logger *log.Logger) LoaderFunc {
	sheet := cfg.Sheet.Sheet()
	opts := LevelOptions(cfg, logger)
	return func(id int) (*level.Level, error) {
		return level.Load(cfg.Levels.Path(id), sheet, opts)
	}
}
