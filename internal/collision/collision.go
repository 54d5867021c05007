// Package collision computes axis-aligned collider rectangles and resolves
// overlap between them. Only rectangle shapes take part; rotation is ignored.
package collision

import "github.com/vovakirdan/tile-pusher/internal/core"

// AbsoluteRect returns the world-space rectangle of obj's collider.
func AbsoluteRect(obj core.Object) core.Rect {
	return Rect(obj.Transform, obj.Shape)
}

// Rect returns the world-space rectangle of shape attached to t.
func Rect(t core.Transform, shape core.CollisionShape) core.Rect {
	pos := t.Position.Add(shape.Transform.Position)
	sx := shape.Transform.Scale.X * t.Scale.X
	sy := shape.Transform.Scale.Y * t.Scale.Y
	return core.Rect{
		X: pos.X,
		Y: pos.Y,
		W: shape.Width * sx,
		H: shape.Height * sy,
	}
}

// Overlaps reports whether two colliding objects intersect.
// Objects whose shape does not collide never overlap anything.
func Overlaps(a, b core.Object) bool {
	if !a.Shape.Collides() || !b.Shape.Collides() {
		return false
	}
	return AbsoluteRect(a).Intersects(AbsoluteRect(b))
}

// OverlapsRect reports whether obj's collider intersects r.
func OverlapsRect(obj core.Object, r core.Rect) bool {
	if !obj.Shape.Collides() {
		return false
	}
	return AbsoluteRect(obj).Intersects(r)
}

// ResolvePenetration returns the minimal axis-aligned translation that moves
// a out of b. Ties between the axes resolve along Y.
func ResolvePenetration(a, b core.Rect) core.Vec2 {
	left := b.Right() - a.X
	right := a.Right() - b.X
	up := b.Bottom() - a.Y
	down := a.Bottom() - b.Y

	minX := min(left, right)
	minY := min(up, down)

	if minX < minY {
		if right < left {
			return core.Vec2{X: -right}
		}
		return core.Vec2{X: left}
	}
	if down < up {
		return core.Vec2{Y: -down}
	}
	return core.Vec2{Y: up}
}
