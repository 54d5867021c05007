package core

// Sheet is the sprite-sheet metadata the engine consumes. Textures are owned
// by the presentation layer; the engine only needs the grid layout.
type Sheet struct {
	Columns  int
	Rows     int
	TileSize int
	Gap      int
	Scale    float64 // world units per sheet pixel
}

// Count returns the number of tiles on the sheet.
func (s Sheet) Count() int {
	return s.Columns * s.Rows
}

// Valid reports whether id addresses a tile on the sheet.
func (s Sheet) Valid(id int) bool {
	return id >= 0 && id < s.Count()
}

// AtlasCell returns the (column, row) of id on the sheet.
func (s Sheet) AtlasCell(id int) Cell {
	if s.Columns <= 0 {
		return Cell{}
	}
	return Cell{X: id % s.Columns, Y: id / s.Columns}
}

// SourceRect returns the pixel rectangle of an atlas cell.
func (s Sheet) SourceRect(atlas Cell) Rect {
	stride := float64(s.TileSize + s.Gap)
	return Rect{
		X: stride * float64(atlas.X),
		Y: stride * float64(atlas.Y),
		W: float64(s.TileSize),
		H: float64(s.TileSize),
	}
}

// CellSize returns the world size of one grid cell.
func (s Sheet) CellSize() float64 {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	return float64(s.TileSize) * scale
}

// Sprite is the presentation handle of an object. The engine never draws it;
// it only keeps the atlas source and origin consistent with game state.
type Sprite struct {
	Transform Transform
	Src       Rect // negative W mirrors horizontally
	Origin    Vec2
	Atlas     Cell
}
