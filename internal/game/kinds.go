// Package game implements the puzzle rules on top of a level grid: grid
// stepping with pushes, pressure plates and portals, the timed level swap,
// and the play/edit/transition mode machine.
package game

import (
	"github.com/vovakirdan/tile-pusher/internal/config"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

// TileKind classifies a tile for the rules and for presentation.
type TileKind uint8

const (
	KindEmpty TileKind = iota
	KindDecoration
	KindWall
	KindPushable
	KindPlate
	KindPortal
)

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindDecoration:
		return "Decoration"
	case KindWall:
		return "Wall"
	case KindPushable:
		return "Pushable"
	case KindPlate:
		return "Plate"
	case KindPortal:
		return "Portal"
	default:
		return "Unknown"
	}
}

// Kinds maps tile ids to the puzzle roles they play.
type Kinds struct {
	Pushable    map[int]bool
	Plate       map[int]bool
	PortalRight map[int]bool
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// NewKinds builds the id sets from configuration.
func NewKinds(cfg config.TilesConfig) Kinds {
	return Kinds{
		Pushable:    idSet(cfg.Pushable),
		Plate:       idSet(cfg.PressurePlate),
		PortalRight: idSet(cfg.PortalRight),
	}
}

// Classify returns the kind of t.
func (k Kinds) Classify(t level.Tile) TileKind {
	switch {
	case t.Empty():
		return KindEmpty
	case k.Pushable[t.ID]:
		return KindPushable
	case k.Plate[t.ID]:
		return KindPlate
	case k.PortalRight[t.ID]:
		return KindPortal
	case t.Object.Shape.Collides():
		return KindWall
	default:
		return KindDecoration
	}
}
