package game

import (
	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

// TileView is one drawable tile.
type TileView struct {
	Layer    int
	Cell     core.Cell
	ID       int
	Kind     TileKind
	Position core.Vec2 // in-flight position for a pushed tile
	Atlas    core.Cell
	Moving   bool
}

// View is everything a presentation layer needs for one frame.
type View struct {
	Mode     Mode
	LevelID  int
	Columns  int
	Rows     int
	Layers   int
	CellSize float64

	Tiles        []TileView // layer order, then index order
	Player       core.Object
	PlayerCell   core.Cell
	Facing       core.Direction
	Camera       Camera
	LightRadius  float64
	PlatesActive int
	PlatesTotal  int
	Satisfied    bool
	Stats        Stats

	Phase    Phase
	Ratio    float64
	Darkness float64
	Message  string

	Editor Editor
}

// View captures the current frame.
func (g *GameState) View() View {
	v := View{
		Mode:         g.modes.Mode(),
		LevelID:      g.levelID,
		Columns:      g.level.Columns(),
		Rows:         g.level.Rows(),
		Layers:       g.level.Layers(),
		CellSize:     g.level.CellSize(),
		Player:       g.player,
		PlayerCell:   g.PlayerCell(),
		Facing:       g.anim.Facing(),
		Camera:       g.camera,
		LightRadius:  g.LightRadius(),
		PlatesActive: g.triggers.Activated(),
		PlatesTotal:  g.triggers.Total(),
		Satisfied:    g.triggers.Satisfied(),
		Stats:        g.stats,
		Phase:        g.transition.Phase(),
		Ratio:        g.transition.Ratio(),
		Darkness:     g.transition.Darkness(),
		Message:      g.transition.Message(),
		Editor:       g.editor,
	}

	push := g.move.Push()
	g.level.Each(func(layer, index int, t *level.Tile) {
		tv := TileView{
			Layer:    layer,
			Cell:     g.level.Cell(index),
			ID:       t.ID,
			Kind:     g.kinds.Classify(*t),
			Position: t.Object.Transform.Position,
			Atlas:    t.Object.Sprite.Atlas,
		}
		if push.Armed && push.Layer == layer && push.Index == index {
			tv.Position = push.Position
			tv.Moving = true
		}
		v.Tiles = append(v.Tiles, tv)
	})
	return v
}
