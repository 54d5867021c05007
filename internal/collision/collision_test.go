package collision

import (
	"testing"

	"github.com/vovakirdan/tile-pusher/internal/core"
)

func box(x, y, w, h float64) core.Object {
	return core.Object{
		Transform: core.Transform{Position: core.V(x, y), Scale: core.V(1, 1)},
		Shape: core.CollisionShape{
			Type:      core.ShapeRectangle,
			Transform: core.Identity(),
			Width:     w,
			Height:    h,
		},
	}
}

func TestAbsoluteRect(t *testing.T) {
	sheet := core.Sheet{Columns: 12, Rows: 11, TileSize: 16, Gap: 1, Scale: 4}

	tests := []struct {
		name     string
		obj      core.Object
		expected core.Rect
	}{
		{
			name:     "plain box",
			obj:      box(10, 20, 5, 6),
			expected: core.NewRect(10, 20, 5, 6),
		},
		{
			name:     "scaled tile",
			obj:      core.Populate(core.V(64, 128), sheet, core.C(1, 0), false),
			expected: core.NewRect(64, 128, 64, 64),
		},
		{
			name:     "centered tile",
			obj:      core.Populate(core.V(64, 64), sheet, core.C(0, 0), true),
			expected: core.NewRect(32, 32, 64, 64),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AbsoluteRect(tc.obj); got != tc.expected {
				t.Errorf("AbsoluteRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestAbsoluteRectIgnoresRotation(t *testing.T) {
	obj := box(0, 0, 10, 20)
	obj.Transform.Rotation = 45
	if got := AbsoluteRect(obj); got != core.NewRect(0, 0, 10, 20) {
		t.Errorf("rotation should not affect collider, got %+v", got)
	}
}

func TestOverlaps(t *testing.T) {
	a := box(0, 0, 64, 64)

	tests := []struct {
		name     string
		b        core.Object
		expected bool
	}{
		{"overlap", box(32, 0, 64, 64), true},
		{"touching edge", box(64, 0, 64, 64), false},
		{"far away", box(200, 200, 64, 64), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}

	t.Run("shape none never collides", func(t *testing.T) {
		b := box(0, 0, 64, 64)
		b.Shape.Type = core.ShapeNone
		if Overlaps(a, b) {
			t.Error("ShapeNone should never overlap")
		}
	})
}

func TestOverlapsPure(t *testing.T) {
	a, b := box(0, 0, 10, 10), box(5, 5, 10, 10)
	first := Overlaps(a, b)
	for i := 0; i < 5; i++ {
		if Overlaps(a, b) != first {
			t.Fatal("Overlaps should be deterministic for unchanged inputs")
		}
	}
	if a != box(0, 0, 10, 10) || b != box(5, 5, 10, 10) {
		t.Error("Overlaps should not mutate its inputs")
	}
}

func TestResolvePenetration(t *testing.T) {
	b := core.NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		a        core.Rect
		expected core.Vec2
	}{
		{"from right side", core.NewRect(8, 2, 10, 5), core.V(2, 0)},
		{"from left side", core.NewRect(-8, 2, 10, 5), core.V(-2, 0)},
		{"from below", core.NewRect(2, 7, 5, 10), core.V(0, 3)},
		{"from above", core.NewRect(2, -7, 5, 10), core.V(0, -3)},
		{"tie resolves on Y", core.NewRect(8, 8, 10, 10), core.V(0, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolvePenetration(tc.a, b)
			if got != tc.expected {
				t.Errorf("ResolvePenetration() = %v, expected %v", got, tc.expected)
			}
			if tc.a.Translate(got).Intersects(b) {
				t.Errorf("resolved rect %+v still overlaps", tc.a.Translate(got))
			}
		})
	}
}
