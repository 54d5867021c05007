package game

import (
	"fmt"

	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

// Editor is the edit-mode cursor: a cell, the layer being painted and the
// tile id to place.
type Editor struct {
	Cursor core.Cell
	Layer  int
	TileID int
}

func (e *Editor) clamp(lvl *level.Level) {
	e.Cursor.X = core.Clamp(e.Cursor.X, 0, max(lvl.Columns()-1, 0))
	e.Cursor.Y = core.Clamp(e.Cursor.Y, 0, max(lvl.Rows()-1, 0))
	if e.Layer >= lvl.Layers() {
		e.Layer = 0
	}
}

// Editor returns the edit cursor.
func (g *GameState) Editor() Editor { return g.editor }

func (g *GameState) canEdit() error {
	if g.modes.Mode() != ModeEdit {
		return ErrNotEditing
	}
	if g.move.Moving() {
		return ErrMoveInFlight
	}
	return nil
}

func (g *GameState) cellIndex(cell core.Cell) (int, error) {
	if !g.level.InBounds(cell.X, cell.Y) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, cell)
	}
	return g.level.Index(cell.X, cell.Y), nil
}

// PlaceTile sets tile id on layer at cell. Placing the id already there is
// a no-op. Only allowed in edit mode with no move in flight.
func (g *GameState) PlaceTile(layer int, cell core.Cell, id int) error {
	if err := g.canEdit(); err != nil {
		return err
	}
	index, err := g.cellIndex(cell)
	if err != nil {
		return err
	}
	return g.level.SetTile(layer, index, id)
}

// EraseTile empties layer at cell. Only allowed in edit mode with no move
// in flight.
func (g *GameState) EraseTile(layer int, cell core.Cell) error {
	if err := g.canEdit(); err != nil {
		return err
	}
	index, err := g.cellIndex(cell)
	if err != nil {
		return err
	}
	return g.level.ClearTile(layer, index)
}

// SaveLevel writes the current level back to the file it came from.
func (g *GameState) SaveLevel() error {
	if err := g.canEdit(); err != nil {
		return err
	}
	path := g.level.Path()
	if path == "" {
		path = g.cfg.Levels.Path(g.levelID)
	}
	return g.level.Save(path)
}

// updateEdit applies one frame of cursor actions.
func (g *GameState) updateEdit(in core.InputFrame) {
	if d := in.Direction(); d != core.DirNone {
		dx, dy := d.Delta()
		g.editor.Cursor = g.editor.Cursor.Add(dx, dy)
		g.editor.clamp(g.level)
	}
	if in.Has(core.ActionNextLayer) {
		g.editor.Layer = (g.editor.Layer + 1) % g.level.Layers()
	}
	if count := g.level.Sheet().Count(); count > 0 {
		if in.Has(core.ActionNextTile) {
			g.editor.TileID = (g.editor.TileID + 1) % count
		}
		if in.Has(core.ActionPrevTile) {
			g.editor.TileID = (g.editor.TileID - 1 + count) % count
		}
	}

	if in.Has(core.ActionPlace) {
		g.editResult(g.PlaceTile(g.editor.Layer, g.editor.Cursor, g.editor.TileID))
	}
	if in.Has(core.ActionErase) {
		g.editResult(g.EraseTile(g.editor.Layer, g.editor.Cursor))
	}
	if in.Has(core.ActionSave) {
		if err := g.SaveLevel(); err != nil {
			g.logger.Warn("cannot save level", "level", g.levelID, "err", err)
			g.emit(Event{Kind: EventEditRejected, Cell: g.editor.Cursor, Err: err})
		} else {
			g.logger.Info("level saved", "level", g.levelID, "path", g.level.Path())
			g.emit(Event{Kind: EventLevelSaved, Cell: g.editor.Cursor})
		}
	}
}

func (g *GameState) editResult(err error) {
	if err != nil {
		g.logger.Warn("edit rejected", "cell", g.editor.Cursor, "err", err)
		g.emit(Event{Kind: EventEditRejected, Cell: g.editor.Cursor, Err: err})
	}
}
