package game

import (
	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

// PlateSignal is what settling a tile on a cell produced.
type PlateSignal uint8

const (
	PlateNone PlateSignal = iota
	PlateClicked
	PlatesSatisfied
)

// TriggerSystem counts pressure plates and watches for portals.
type TriggerSystem struct {
	kinds      Kinds
	cumulative bool

	total     int
	activated int
	pressed   map[int]bool
	satisfied bool
}

// NewTriggerSystem creates a trigger system. With cumulative set every
// settle on a plate counts, even on a plate that was already pressed.
func NewTriggerSystem(kinds Kinds, cumulative bool) *TriggerSystem {
	return &TriggerSystem{
		kinds:      kinds,
		cumulative: cumulative,
		pressed:    make(map[int]bool),
	}
}

// Reset counts the plates of a freshly loaded level and clears activations.
// A level without plates is satisfied from the start.
func (t *TriggerSystem) Reset(lvl *level.Level) {
	t.total = lvl.CountCells(t.kinds.Plate)
	t.activated = 0
	clear(t.pressed)
	t.satisfied = t.total == 0
}

// Recount refreshes the plate total after the grid was edited. Activations
// on cells that are no longer plates are dropped.
func (t *TriggerSystem) Recount(lvl *level.Level) {
	t.total = lvl.CountCells(t.kinds.Plate)
	for index := range t.pressed {
		if !lvl.HasID(index, t.kinds.Plate) {
			delete(t.pressed, index)
		}
	}
	if !t.cumulative {
		t.activated = len(t.pressed)
	}
	t.satisfied = t.activated >= t.total
}

// OnTileSettled evaluates the cell a pushed tile just came to rest on.
func (t *TriggerSystem) OnTileSettled(lvl *level.Level, index int) PlateSignal {
	if !lvl.HasID(index, t.kinds.Plate) {
		return PlateNone
	}
	if !t.cumulative && t.pressed[index] {
		return PlateNone
	}
	t.pressed[index] = true
	t.activated++
	if t.activated >= t.total {
		t.satisfied = true
		return PlatesSatisfied
	}
	return PlateClicked
}

// PortalAhead reports whether the cell right of cell holds a portal and
// every plate is satisfied. Only the right-hand neighbour is checked.
func (t *TriggerSystem) PortalAhead(lvl *level.Level, cell core.Cell) bool {
	if !t.satisfied {
		return false
	}
	next := cell.Add(1, 0)
	if !lvl.InBounds(next.X, next.Y) {
		return false
	}
	return lvl.HasID(lvl.Index(next.X, next.Y), t.kinds.PortalRight)
}

// Total returns the number of plate cells on the level.
func (t *TriggerSystem) Total() int { return t.total }

// Activated returns the activation counter.
func (t *TriggerSystem) Activated() int { return t.activated }

// Satisfied reports whether every plate has been activated.
func (t *TriggerSystem) Satisfied() bool { return t.satisfied }
