package core

// Transform places something in the world.
type Transform struct {
	Position Vec2
	Rotation float64
	Scale    Vec2
}

// Identity returns a transform with unit scale at the origin.
func Identity() Transform {
	return Transform{Scale: Vec2{X: 1, Y: 1}}
}

// Then composes t with a local sub-transform. Local position is an offset
// in world units and is not rotated or scaled by t.
func (t Transform) Then(local Transform) Transform {
	return Transform{
		Position: t.Position.Add(local.Position),
		Rotation: t.Rotation + local.Rotation,
		Scale:    t.Scale.Mul(local.Scale),
	}
}

// ShapeType tags the collision shape variant.
type ShapeType uint8

const (
	ShapeNone ShapeType = iota
	ShapeRectangle
	ShapeCircle
	ShapeTriangle
)

// String returns a human-readable name for the shape type.
func (s ShapeType) String() string {
	switch s {
	case ShapeNone:
		return "None"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeCircle:
		return "Circle"
	case ShapeTriangle:
		return "Triangle"
	default:
		return "Unknown"
	}
}

// CollisionShape is a collider relative to its owning object.
// Only rectangles take part in collision; ShapeNone never collides.
type CollisionShape struct {
	Type      ShapeType
	Transform Transform
	Width     float64
	Height    float64
}

// Collides reports whether the shape participates in collision checks.
func (s CollisionShape) Collides() bool {
	return s.Type == ShapeRectangle
}

// Object is a positioned sprite with an optional collider.
type Object struct {
	Transform Transform
	Sprite    Sprite
	Shape     CollisionShape
}

// Populate builds an object at position whose sprite shows atlas cell of sheet.
// The collider covers the sprite's source size. When centered is set, the
// sprite origin sits at the middle of the tile and the collider is shifted
// back by half its scaled size so it stays centered on position.
func Populate(position Vec2, sheet Sheet, atlas Cell, centered bool) Object {
	scale := sheet.Scale
	if scale <= 0 {
		scale = 1
	}
	src := sheet.SourceRect(atlas)

	obj := Object{
		Transform: Transform{
			Position: position,
			Scale:    Vec2{X: scale, Y: scale},
		},
		Sprite: Sprite{
			Transform: Identity(),
			Src:       src,
			Atlas:     atlas,
		},
		Shape: CollisionShape{
			Type:      ShapeRectangle,
			Transform: Identity(),
			Width:     src.W,
			Height:    src.H,
		},
	}

	if centered {
		obj.Sprite.Origin = Vec2{X: src.W / 2, Y: src.H / 2}
		obj.Shape.Transform.Position = Vec2{
			X: -obj.Shape.Width / 2 * scale,
			Y: -obj.Shape.Height / 2 * scale,
		}
	}
	return obj
}

// Mirrored reports whether the sprite is flipped horizontally.
func (o Object) Mirrored() bool {
	return o.Sprite.Src.W < 0
}

// SetMirrored flips the sprite horizontally by the sign of its source width.
func (o *Object) SetMirrored(mirrored bool) {
	if mirrored != o.Mirrored() {
		o.Sprite.Src.W = -o.Sprite.Src.W
	}
}
