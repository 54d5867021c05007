package level

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tile-pusher/internal/core"
)

func testSheet() core.Sheet {
	return core.Sheet{Columns: 12, Rows: 11, TileSize: 16, Gap: 1, Scale: 4}
}

func mustLoad(t *testing.T, name string) *Level {
	t.Helper()
	lvl, err := Load(filepath.Join("testdata", name), testSheet(), Options{})
	if err != nil {
		t.Fatalf("Load(%s) error: %v", name, err)
	}
	return lvl
}

func TestLoadSmall(t *testing.T) {
	lvl := mustLoad(t, "small.txt")

	if lvl.Columns() != 4 || lvl.Rows() != 4 || lvl.Layers() != DefaultLayers {
		t.Fatalf("extent = %dx%dx%d, expected 4x4x3", lvl.Columns(), lvl.Rows(), lvl.Layers())
	}
	if len(lvl.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", lvl.Warnings())
	}

	tests := []struct {
		name     string
		layer    int
		x, y     int
		id       int
		collides bool
	}{
		{"wall on collider layer", 1, 0, 0, 10, true},
		{"floor on decoration layer", 0, 1, 1, 0, false},
		{"pushable", 1, 2, 1, 88, true},
		{"plate on floor layer", 0, 1, 2, 89, false},
		{"portal", 1, 3, 2, 90, true},
		{"empty top layer", 2, 1, 1, InvalidID, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tile := lvl.At(tc.layer, tc.x, tc.y)
			if tile == nil {
				t.Fatal("At() returned nil")
			}
			if tile.ID != tc.id {
				t.Errorf("ID = %d, expected %d", tile.ID, tc.id)
			}
			if tile.Object.Shape.Collides() != tc.collides {
				t.Errorf("Collides() = %v, expected %v", tile.Object.Shape.Collides(), tc.collides)
			}
		})
	}
}

func TestLoadTilePosition(t *testing.T) {
	lvl := mustLoad(t, "small.txt")
	tile := lvl.At(1, 2, 1)

	if tile.Object.Transform.Position != core.V(128, 64) {
		t.Errorf("position = %v, expected (128,64)", tile.Object.Transform.Position)
	}
	if tile.Object.Sprite.Atlas != core.C(4, 7) {
		t.Errorf("atlas = %v, expected (4,7)", tile.Object.Sprite.Atlas)
	}
}

func TestLoadMalformed(t *testing.T) {
	lvl := mustLoad(t, "malformed.txt")

	if lvl.Columns() != 3 || lvl.Rows() != 4 {
		t.Fatalf("extent = %dx%d, expected 3x4", lvl.Columns(), lvl.Rows())
	}

	expect := map[[3]int]int{
		{0, 0, 0}: 0, {1, 0, 0}: 1, {2, 0, 0}: 2,
		{0, 1, 0}: InvalidID,
		{0, 2, 0}: 5,
		{0, 0, 1}: 0, {1, 0, 1}: InvalidID, {2, 0, 1}: 7,
		{0, 1, 1}: InvalidID, {1, 1, 1}: 1,
		{0, 2, 1}: InvalidID,
		{0, 0, 2}: InvalidID,
		{0, 0, 3}: 1, {1, 0, 3}: 2, {2, 0, 3}: 3,
	}
	for key, id := range expect {
		layer, x, y := key[0], key[1], key[2]
		if got := lvl.At(layer, x, y).ID; got != id {
			t.Errorf("layer %d (%d,%d) = %d, expected %d", layer, x, y, got, id)
		}
	}

	if n := len(lvl.Warnings()); n != 4 {
		t.Errorf("got %d warnings, expected 4: %v", n, lvl.Warnings())
	}
}

func TestLoadIDInvariant(t *testing.T) {
	for _, name := range []string{"small.txt", "malformed.txt"} {
		lvl := mustLoad(t, name)
		sheet := lvl.Sheet()
		for layer := 0; layer < lvl.Layers(); layer++ {
			for i := 0; i < lvl.Count(); i++ {
				id := lvl.ID(layer, i)
				if id != InvalidID && !sheet.Valid(id) {
					t.Errorf("%s: layer %d index %d holds invalid id %d", name, layer, i, id)
				}
			}
		}
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "nope.txt"), testSheet(), Options{})
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("expected *LoadError, got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("LoadError should unwrap to ErrNotExist, got %v", le.Err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "empty.txt"), testSheet(), Options{})
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty, got %v", err)
		}
	})
}

func TestParseExtentLimits(t *testing.T) {
	data := []byte("1 1 1 1\n1 1 1 1\n1 1 1 1\n")

	t.Run("fixed extent truncates", func(t *testing.T) {
		lvl, err := Parse(data, testSheet(), Options{FixedColumns: 2, FixedRows: 2})
		if err != nil {
			t.Fatal(err)
		}
		if lvl.Columns() != 2 || lvl.Rows() != 2 {
			t.Errorf("extent = %dx%d, expected 2x2", lvl.Columns(), lvl.Rows())
		}
		if len(lvl.Warnings()) != 3 {
			t.Errorf("expected 3 truncation warnings, got %v", lvl.Warnings())
		}
	})

	t.Run("fixed extent pads", func(t *testing.T) {
		lvl, err := Parse(data, testSheet(), Options{FixedColumns: 6, FixedRows: 5})
		if err != nil {
			t.Fatal(err)
		}
		if lvl.Columns() != 6 || lvl.Rows() != 5 {
			t.Errorf("extent = %dx%d, expected 6x5", lvl.Columns(), lvl.Rows())
		}
		if lvl.At(0, 5, 4).ID != InvalidID {
			t.Error("padding cells should be empty")
		}
	})

	t.Run("max caps", func(t *testing.T) {
		lvl, err := Parse(data, testSheet(), Options{MaxColumns: 3, MaxRows: 1})
		if err != nil {
			t.Fatal(err)
		}
		if lvl.Columns() != 3 || lvl.Rows() != 1 {
			t.Errorf("extent = %dx%d, expected 3x1", lvl.Columns(), lvl.Rows())
		}
	})
}

func TestParseDecorationPolicy(t *testing.T) {
	lvl, err := Parse([]byte("1:1:1"), testSheet(), Options{DecorationLayers: []int{1}})
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, true}
	for layer, collides := range want {
		if got := lvl.Tile(layer, 0).Object.Shape.Collides(); got != collides {
			t.Errorf("layer %d collides = %v, expected %v", layer, got, collides)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"small.txt", "malformed.txt"} {
		t.Run(name, func(t *testing.T) {
			lvl := mustLoad(t, name)
			path := filepath.Join(t.TempDir(), "out", "level.txt")
			if err := lvl.Save(path); err != nil {
				t.Fatalf("Save() error: %v", err)
			}

			again, err := Load(path, testSheet(), Options{})
			if err != nil {
				t.Fatalf("reload error: %v", err)
			}
			if again.Columns() != lvl.Columns() || again.Rows() != lvl.Rows() {
				t.Fatalf("extent changed: %dx%d -> %dx%d", lvl.Columns(), lvl.Rows(), again.Columns(), again.Rows())
			}
			for layer := 0; layer < lvl.Layers(); layer++ {
				for i := 0; i < lvl.Count(); i++ {
					if lvl.ID(layer, i) != again.ID(layer, i) {
						t.Errorf("layer %d index %d: %d != %d", layer, i, lvl.ID(layer, i), again.ID(layer, i))
					}
				}
			}
			if len(again.Warnings()) != 0 {
				t.Errorf("saved file should parse cleanly, got %v", again.Warnings())
			}
		})
	}
}

func TestSaveFormat(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "small.txt"))
	if err != nil {
		t.Fatal(err)
	}
	lvl := mustLoad(t, "small.txt")

	var buf bytes.Buffer
	if _, err := lvl.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != string(raw) {
		t.Errorf("WriteTo() =\n%s\nexpected\n%s", buf.String(), raw)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for _, line := range lines {
		cells := strings.Split(line, " ")
		if len(cells) != lvl.Columns() {
			t.Errorf("line %q has %d cells", line, len(cells))
		}
		for _, c := range cells {
			if strings.Count(c, ":") != lvl.Layers()-1 {
				t.Errorf("cell %q does not have %d layers", c, lvl.Layers())
			}
		}
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	lvl := New(2, 2, testSheet(), Options{})
	if err := lvl.Save(filepath.Join(dir, "a.txt")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the saved file, got %d entries", len(entries))
	}
}

func TestSetAndClearTile(t *testing.T) {
	lvl := New(3, 3, testSheet(), Options{})
	idx := lvl.Index(1, 2)

	if err := lvl.SetTile(1, idx, 10); err != nil {
		t.Fatalf("SetTile() error: %v", err)
	}
	tile := lvl.Tile(1, idx)
	if tile.ID != 10 || !tile.Object.Shape.Collides() {
		t.Errorf("tile = %+v", tile)
	}
	if tile.Object.Transform.Position != core.V(64, 128) {
		t.Errorf("position = %v", tile.Object.Transform.Position)
	}

	if err := lvl.SetTile(0, idx, 10); err != nil {
		t.Fatal(err)
	}
	if lvl.Tile(0, idx).Object.Shape.Collides() {
		t.Error("decoration layer tile should not collide")
	}

	if err := lvl.SetTile(1, idx, 500); !errors.Is(err, ErrInvalidTileID) {
		t.Errorf("expected ErrInvalidTileID, got %v", err)
	}
	if err := lvl.SetTile(3, idx, 1); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("expected ErrInvalidLayer, got %v", err)
	}
	if err := lvl.SetTile(1, 99, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	if err := lvl.ClearTile(1, idx); err != nil {
		t.Fatal(err)
	}
	if !lvl.Tile(1, idx).Empty() {
		t.Error("cleared tile should be empty")
	}
}

func TestMoveTile(t *testing.T) {
	lvl := New(4, 1, testSheet(), Options{})
	if err := lvl.SetTile(1, 1, 88); err != nil {
		t.Fatal(err)
	}
	if err := lvl.MoveTile(1, 1, 2); err != nil {
		t.Fatal(err)
	}
	if !lvl.Tile(1, 1).Empty() {
		t.Error("source should be empty after move")
	}
	dst := lvl.Tile(1, 2)
	if dst.ID != 88 || dst.Object.Transform.Position != core.V(128, 0) {
		t.Errorf("destination = id %d at %v", dst.ID, dst.Object.Transform.Position)
	}
}

func TestGenerationsDiffer(t *testing.T) {
	a := New(1, 1, testSheet(), Options{})
	b := New(1, 1, testSheet(), Options{})
	if a.Generation() == b.Generation() {
		t.Error("each level should get its own generation")
	}
}

func TestCountCells(t *testing.T) {
	lvl := mustLoad(t, "small.txt")
	if n := lvl.CountCells(map[int]bool{89: true}); n != 1 {
		t.Errorf("plates = %d, expected 1", n)
	}
	if !lvl.HasID(lvl.Index(1, 2), map[int]bool{89: true}) {
		t.Error("HasID should find the plate")
	}
}

func TestCellAt(t *testing.T) {
	lvl := New(4, 4, testSheet(), Options{})
	tests := []struct {
		p    core.Vec2
		cell core.Cell
	}{
		{core.V(0, 0), core.C(0, 0)},
		{core.V(63.9, 64), core.C(0, 1)},
		{core.V(96, 160), core.C(1, 2)},
		{core.V(-1, -1), core.C(-1, -1)},
	}
	for _, tc := range tests {
		if got := lvl.CellAt(tc.p); got != tc.cell {
			t.Errorf("CellAt(%v) = %v, expected %v", tc.p, got, tc.cell)
		}
	}
}
