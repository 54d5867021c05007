package core

import "testing"

func testSheet() Sheet {
	return Sheet{Columns: 12, Rows: 11, TileSize: 16, Gap: 1, Scale: 4}
}

func TestSheetAtlas(t *testing.T) {
	s := testSheet()

	tests := []struct {
		id    int
		valid bool
		cell  Cell
	}{
		{0, true, C(0, 0)},
		{11, true, C(11, 0)},
		{12, true, C(0, 1)},
		{131, true, C(11, 10)},
		{132, false, C(0, 11)},
		{-1, false, Cell{}},
	}

	for _, tc := range tests {
		if got := s.Valid(tc.id); got != tc.valid {
			t.Errorf("Valid(%d) = %v, expected %v", tc.id, got, tc.valid)
		}
		if tc.id >= 0 {
			if got := s.AtlasCell(tc.id); got != tc.cell {
				t.Errorf("AtlasCell(%d) = %v, expected %v", tc.id, got, tc.cell)
			}
		}
	}
}

func TestPopulate(t *testing.T) {
	s := testSheet()

	t.Run("top-left anchored", func(t *testing.T) {
		obj := Populate(V(128, 64), s, C(2, 1), false)

		if obj.Sprite.Src != NewRect(34, 17, 16, 16) {
			t.Errorf("Src = %+v, expected (34,17,16,16)", obj.Sprite.Src)
		}
		if obj.Transform.Scale != V(4, 4) {
			t.Errorf("Scale = %v", obj.Transform.Scale)
		}
		if obj.Shape.Type != ShapeRectangle || obj.Shape.Width != 16 || obj.Shape.Height != 16 {
			t.Errorf("Shape = %+v", obj.Shape)
		}
		if !obj.Shape.Transform.Position.IsZero() || !obj.Sprite.Origin.IsZero() {
			t.Error("non-centered object should have zero offsets")
		}
	})

	t.Run("centered", func(t *testing.T) {
		obj := Populate(V(0, 0), s, C(0, 0), true)

		if obj.Sprite.Origin != V(8, 8) {
			t.Errorf("Origin = %v, expected (8,8)", obj.Sprite.Origin)
		}
		if obj.Shape.Transform.Position != V(-32, -32) {
			t.Errorf("collider offset = %v, expected (-32,-32)", obj.Shape.Transform.Position)
		}
	})
}

func TestObjectMirror(t *testing.T) {
	obj := Populate(V(0, 0), testSheet(), C(2, 0), false)

	obj.SetMirrored(true)
	if !obj.Mirrored() || obj.Sprite.Src.W != -16 {
		t.Errorf("mirrored Src.W = %v", obj.Sprite.Src.W)
	}
	obj.SetMirrored(true)
	if obj.Sprite.Src.W != -16 {
		t.Error("mirroring twice should be idempotent")
	}
	obj.SetMirrored(false)
	if obj.Mirrored() {
		t.Error("expected unmirrored sprite")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Direction
	}{
		{"none", nil, DirNone},
		{"up", []Action{ActionUp}, DirUp},
		{"horizontal wins", []Action{ActionUp, ActionLeft}, DirLeft},
		{"right over left", []Action{ActionLeft, ActionRight}, DirRight},
		{"down over up", []Action{ActionUp, ActionDown}, DirDown},
		{"non-directional ignored", []Action{ActionRestart}, DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
