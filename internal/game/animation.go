package game

import "github.com/vovakirdan/tile-pusher/internal/core"

// Animator swaps the player between two frame sets on a fixed period and
// picks the sheet column from the facing direction.
type Animator struct {
	sheet    core.Sheet
	period   float64
	timer    float64
	frameSet int
	facing   core.Direction
}

// NewAnimator creates an animator facing down.
func NewAnimator(sheet core.Sheet, period float64) *Animator {
	return &Animator{sheet: sheet, period: period, facing: core.DirDown}
}

// Facing returns the last recorded direction.
func (a *Animator) Facing() core.Direction { return a.facing }

// FrameSet returns the active frame set (0 or 1).
func (a *Animator) FrameSet() int { return a.frameSet }

// column maps a facing to its sheet column: side, back, front.
func column(dir core.Direction) int {
	switch dir {
	case core.DirLeft, core.DirRight:
		return 2
	case core.DirUp:
		return 1
	default:
		return 0
	}
}

// Face records dir. A change of direction re-picks the frame at once and
// mirrors the sprite for leftward travel.
func (a *Animator) Face(dir core.Direction, player *core.Object) {
	if dir == core.DirNone || dir == a.facing {
		return
	}
	a.facing = dir
	a.apply(player, dir == core.DirLeft)
}

// Tick advances the frame timer independently of movement.
func (a *Animator) Tick(dt float64, player *core.Object) {
	if a.period <= 0 {
		return
	}
	a.timer += dt
	if a.timer < a.period {
		return
	}
	a.timer -= a.period
	a.frameSet ^= 1
	a.apply(player, player.Mirrored())
}

// Reset faces down on the first frame set.
func (a *Animator) Reset(player *core.Object) {
	a.timer = 0
	a.frameSet = 0
	a.facing = core.DirDown
	a.apply(player, false)
}

func (a *Animator) apply(player *core.Object, mirrored bool) {
	atlas := core.Cell{X: column(a.facing), Y: a.frameSet}
	player.Sprite.Atlas = atlas
	player.Sprite.Src = a.sheet.SourceRect(atlas)
	player.SetMirrored(mirrored)
}
