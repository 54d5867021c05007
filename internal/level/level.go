// Package level owns the layered tile grid of a puzzle level: parsing and
// saving the text format, per-cell reads and writes, and file watching.
package level

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tile-pusher/internal/core"
)

const (
	// DefaultLayers is the number of parallel tile planes per level.
	DefaultLayers = 3
	// InvalidID marks an empty cell on a layer.
	InvalidID = -1
)

var (
	ErrInvalidTileID = errors.New("level: tile id out of sheet range")
	ErrInvalidLayer  = errors.New("level: layer out of range")
	ErrOutOfBounds   = errors.New("level: cell outside level extent")
	ErrEmpty         = errors.New("level: no rows")
)

// LoadError reports a level that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("level: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Tile is one cell of one layer.
type Tile struct {
	Object core.Object
	ID     int
}

// Empty reports whether the tile holds nothing.
func (t Tile) Empty() bool {
	return t.ID == InvalidID
}

func emptyTile() Tile {
	return Tile{ID: InvalidID}
}

// Options control extent and layer policy when creating a level.
type Options struct {
	Layers           int   // 0 = DefaultLayers
	DecorationLayers []int // nil = even layers
	FixedColumns     int   // 0 = derive from input
	FixedRows        int   // 0 = derive from input
	MaxColumns       int   // 0 = unlimited
	MaxRows          int   // 0 = unlimited
	Logger           *log.Logger
}

func (o Options) layers() int {
	if o.Layers <= 0 {
		return DefaultLayers
	}
	return o.Layers
}

func (o Options) decoration() []bool {
	deco := make([]bool, o.layers())
	if o.DecorationLayers == nil {
		for i := range deco {
			deco[i] = i%2 == 0
		}
		return deco
	}
	for _, l := range o.DecorationLayers {
		if l >= 0 && l < len(deco) {
			deco[l] = true
		}
	}
	return deco
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

var generations atomic.Uint64

// arena is the single allocation backing every layer of one level.
// A level swap drops the whole arena; tiles are never freed one by one.
type arena struct {
	id     uint64
	tiles  []Tile
	layers [][]Tile
}

func newArena(layers, count int) *arena {
	a := &arena{
		id:     generations.Add(1),
		tiles:  make([]Tile, layers*count),
		layers: make([][]Tile, layers),
	}
	for i := range a.tiles {
		a.tiles[i] = emptyTile()
	}
	for l := range a.layers {
		a.layers[l] = a.tiles[l*count : (l+1)*count : (l+1)*count]
	}
	return a
}

// Level is a columns x rows grid with a fixed number of layers.
type Level struct {
	columns    int
	rows       int
	sheet      core.Sheet
	decoration []bool
	mem        *arena
	warnings   []Warning
	path       string
}

// New creates an empty level of the given extent.
func New(columns, rows int, sheet core.Sheet, opts Options) *Level {
	columns = max(columns, 0)
	rows = max(rows, 0)
	return &Level{
		columns:    columns,
		rows:       rows,
		sheet:      sheet,
		decoration: opts.decoration(),
		mem:        newArena(opts.layers(), columns*rows),
	}
}

// Columns returns the grid width in cells.
func (l *Level) Columns() int { return l.columns }

// Rows returns the grid height in cells.
func (l *Level) Rows() int { return l.rows }

// Layers returns the number of layers.
func (l *Level) Layers() int { return len(l.mem.layers) }

// Count returns the number of cells per layer.
func (l *Level) Count() int { return l.columns * l.rows }

// Sheet returns the sheet metadata tiles were built from.
func (l *Level) Sheet() core.Sheet { return l.sheet }

// Path returns the file the level was loaded from, if any.
func (l *Level) Path() string { return l.path }

// Generation identifies this level's tile storage. Every load or New
// yields a distinct value.
func (l *Level) Generation() uint64 { return l.mem.id }

// Warnings returns the problems recovered while parsing.
func (l *Level) Warnings() []Warning { return l.warnings }

// CellSize returns the world size of one cell.
func (l *Level) CellSize() float64 { return l.sheet.CellSize() }

// Extent returns the world size of the whole grid.
func (l *Level) Extent() core.Vec2 {
	cs := l.CellSize()
	return core.Vec2{X: float64(l.columns) * cs, Y: float64(l.rows) * cs}
}

// Decoration reports whether layer carries no colliders.
func (l *Level) Decoration(layer int) bool {
	return layer >= 0 && layer < len(l.decoration) && l.decoration[layer]
}

// InBounds reports whether (x, y) addresses a cell.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.columns && y >= 0 && y < l.rows
}

// Index returns the per-layer index of (x, y).
func (l *Level) Index(x, y int) int {
	return x + y*l.columns
}

// Cell returns the grid coordinate of index.
func (l *Level) Cell(index int) core.Cell {
	if l.columns == 0 {
		return core.Cell{}
	}
	return core.Cell{X: index % l.columns, Y: index / l.columns}
}

// CellPosition returns the world position of the cell's top-left corner.
func (l *Level) CellPosition(x, y int) core.Vec2 {
	cs := l.CellSize()
	return core.Vec2{X: float64(x) * cs, Y: float64(y) * cs}
}

// CellAt returns the cell containing world position p.
func (l *Level) CellAt(p core.Vec2) core.Cell {
	cs := l.CellSize()
	return core.Cell{X: floorDiv(p.X, cs), Y: floorDiv(p.Y, cs)}
}

func floorDiv(v, size float64) int {
	q := v / size
	i := int(q)
	if float64(i) > q {
		i--
	}
	return i
}

func (l *Level) validIndex(layer, index int) error {
	if layer < 0 || layer >= l.Layers() {
		return ErrInvalidLayer
	}
	if index < 0 || index >= l.Count() {
		return ErrOutOfBounds
	}
	return nil
}

// Tile returns the tile at (layer, index), or nil if either is out of range.
// The pointer aliases level storage and is invalid after the level is replaced.
func (l *Level) Tile(layer, index int) *Tile {
	if l.validIndex(layer, index) != nil {
		return nil
	}
	return &l.mem.layers[layer][index]
}

// At returns the tile at (layer, x, y), or nil when out of range.
func (l *Level) At(layer, x, y int) *Tile {
	if !l.InBounds(x, y) {
		return nil
	}
	return l.Tile(layer, l.Index(x, y))
}

// ID returns the tile id at (layer, index), or InvalidID when out of range.
func (l *Level) ID(layer, index int) int {
	t := l.Tile(layer, index)
	if t == nil {
		return InvalidID
	}
	return t.ID
}

// Each calls fn for every non-empty tile, layer by layer in index order.
func (l *Level) Each(fn func(layer, index int, t *Tile)) {
	for layer, tiles := range l.mem.layers {
		for i := range tiles {
			if tiles[i].ID != InvalidID {
				fn(layer, i, &tiles[i])
			}
		}
	}
}

// populate builds the object for id at index on layer.
func (l *Level) populate(layer, index, id int) Tile {
	c := l.Cell(index)
	obj := core.Populate(l.CellPosition(c.X, c.Y), l.sheet, l.sheet.AtlasCell(id), false)
	if l.Decoration(layer) {
		obj.Shape.Type = core.ShapeNone
	}
	return Tile{Object: obj, ID: id}
}

// SetTile places id at (layer, index). Setting the id a cell already holds
// is a no-op; InvalidID clears the cell.
func (l *Level) SetTile(layer, index, id int) error {
	if err := l.validIndex(layer, index); err != nil {
		return err
	}
	if id == InvalidID {
		return l.ClearTile(layer, index)
	}
	if !l.sheet.Valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidTileID, id)
	}
	if l.mem.layers[layer][index].ID == id {
		return nil
	}
	l.mem.layers[layer][index] = l.populate(layer, index, id)
	return nil
}

// ClearTile empties (layer, index).
func (l *Level) ClearTile(layer, index int) error {
	if err := l.validIndex(layer, index); err != nil {
		return err
	}
	l.mem.layers[layer][index] = emptyTile()
	return nil
}

// MoveTile relocates the tile at (layer, from) to (layer, to), placing it
// exactly on the destination cell and clearing the source.
func (l *Level) MoveTile(layer, from, to int) error {
	if err := l.validIndex(layer, from); err != nil {
		return err
	}
	if err := l.validIndex(layer, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	tiles := l.mem.layers[layer]
	moved := tiles[from]
	c := l.Cell(to)
	moved.Object.Transform.Position = l.CellPosition(c.X, c.Y)
	tiles[to] = moved
	tiles[from] = emptyTile()
	return nil
}

// HasID reports whether any layer at index holds one of ids.
func (l *Level) HasID(index int, ids map[int]bool) bool {
	for layer := range l.mem.layers {
		if id := l.ID(layer, index); id != InvalidID && ids[id] {
			return true
		}
	}
	return false
}

// CountCells returns how many cells hold one of ids on any layer.
func (l *Level) CountCells(ids map[int]bool) int {
	n := 0
	for i := 0; i < l.Count(); i++ {
		if l.HasID(i, ids) {
			n++
		}
	}
	return n
}
