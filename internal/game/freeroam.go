package game

import (
	"github.com/vovakirdan/tile-pusher/internal/collision"
	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/level"
)

// FreeRoamController moves the player continuously and slides it out of
// colliders. It never pushes.
type FreeRoamController struct {
	speed float64
}

// NewFreeRoamController creates a controller moving at speed units/second.
func NewFreeRoamController(speed float64) *FreeRoamController {
	return &FreeRoamController{speed: speed}
}

// Intent combines every held direction into one vector; opposite
// directions cancel.
func Intent(in core.InputFrame) core.Vec2 {
	var v core.Vec2
	for _, d := range []struct {
		a   core.Action
		dir core.Direction
	}{
		{core.ActionRight, core.DirRight},
		{core.ActionLeft, core.DirLeft},
		{core.ActionDown, core.DirDown},
		{core.ActionUp, core.DirUp},
	} {
		if in.Has(d.a) {
			v = v.Add(d.dir.Vec())
		}
	}
	return v
}

// Update moves player along intent and resolves penetration against every
// colliding tile. It returns the distance actually travelled.
func (f *FreeRoamController) Update(dt float64, lvl *level.Level, player *core.Object, intent core.Vec2) float64 {
	before := player.Transform.Position
	velocity := intent.Normalize().Scale(f.speed * dt)
	player.Transform.Position = player.Transform.Position.Add(velocity)

	lvl.Each(func(_, _ int, t *level.Tile) {
		if !collision.Overlaps(*player, t.Object) {
			return
		}
		push := collision.ResolvePenetration(collision.AbsoluteRect(*player), collision.AbsoluteRect(t.Object))
		player.Transform.Position = player.Transform.Position.Add(push)
	})
	return player.Transform.Position.Sub(before).Len()
}
