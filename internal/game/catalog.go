package game

import (
	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tile-pusher/internal/config"
)

// CatalogEntry describes one level of the configured sequence.
type CatalogEntry struct {
	ID       int
	Path     string
	Columns  int
	Rows     int
	Plates   int
	Portals  int
	Warnings int
	Err      error
}

// OK reports whether the level loaded.
func (e CatalogEntry) OK() bool { return e.Err == nil }

// Catalog loads every level from 1 to MaxLevels and summarizes it. A level
// that fails to load is listed with its error.
func Catalog(cfg config.GameConfig, logger *log.Logger) []CatalogEntry {
	kinds := NewKinds(cfg.Tiles)
	load := FileLoader(cfg, logger)

	entries := make([]CatalogEntry, 0, cfg.Transition.MaxLevels)
	for id := 1; id <= cfg.Transition.MaxLevels; id++ {
		entry := CatalogEntry{ID: id, Path: cfg.Levels.Path(id)}
		lvl, err := load(id)
		if err != nil {
			entry.Err = err
			entries = append(entries, entry)
			continue
		}
		entry.Columns = lvl.Columns()
		entry.Rows = lvl.Rows()
		entry.Plates = lvl.CountCells(kinds.Plate)
		entry.Portals = lvl.CountCells(kinds.PortalRight)
		entry.Warnings = len(lvl.Warnings())
		entries = append(entries, entry)
	}
	return entries
}
