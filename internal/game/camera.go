package game

import "github.com/vovakirdan/tile-pusher/internal/core"

// Camera follows a point inside bounds derived from the level extent.
type Camera struct {
	Target   core.Vec2
	Viewport core.Vec2
	min, max core.Vec2
}

// NewCamera creates a camera for a viewport of the given world size.
func NewCamera(viewport core.Vec2) Camera {
	return Camera{Viewport: viewport}
}

// SetBounds keeps the view inside a level of the given world extent.
// A level smaller than the viewport pins the camera at the viewport center.
func (c *Camera) SetBounds(extent core.Vec2) {
	half := c.Viewport.Scale(0.5)
	c.min = half
	c.max = extent.Sub(half)
	c.max.X = max(c.max.X, c.min.X)
	c.max.Y = max(c.max.Y, c.min.Y)
}

// Follow points the camera at p, clamped to the bounds.
func (c *Camera) Follow(p core.Vec2) {
	c.Target = core.Vec2{
		X: core.ClampF(p.X, c.min.X, c.max.X),
		Y: core.ClampF(p.Y, c.min.Y, c.max.Y),
	}
}

// Visible returns the world rectangle currently in view.
func (c Camera) Visible() core.Rect {
	return core.Rect{
		X: c.Target.X - c.Viewport.X/2,
		Y: c.Target.Y - c.Viewport.Y/2,
		W: c.Viewport.X,
		H: c.Viewport.Y,
	}
}
