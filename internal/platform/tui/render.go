package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDim:          lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellWidth is the number of terminal columns per grid cell. Half a cell
// is one column, so half steps are visible horizontally.
const cellWidth = 2

type glyph struct {
	text  string
	color core.Color
}

var kindGlyphs = map[game.TileKind]glyph{
	game.KindDecoration: {". ", core.ColorDim},
	game.KindWall:       {"##", core.ColorGray},
	game.KindPushable:   {"[]", core.ColorOrange},
	game.KindPlate:      {"__", core.ColorYellow},
	game.KindPortal:     {">>", core.ColorMagenta},
}

var playerGlyphs = map[core.Direction]string{
	core.DirLeft:  "<@",
	core.DirRight: "@>",
	core.DirUp:    "@^",
	core.DirDown:  "@v",
}

// Board draws game views onto a screen.
type Board struct {
	glyphs map[int]string // per tile id overrides
}

// NewBoard creates a board. glyphs overrides the two-column text drawn for
// specific tile ids.
func NewBoard(glyphs map[int]string) *Board {
	return &Board{glyphs: glyphs}
}

// Draw renders v onto s, replacing its content.
func (b *Board) Draw(s *core.Screen, v game.View) {
	s.Clear()
	if v.CellSize <= 0 || s.Width() < cellWidth || s.Height() == 0 {
		return
	}
	origin := viewOrigin(v, s.Width()/cellWidth, s.Height())

	plates := make(map[core.Cell]bool)
	for _, t := range v.Tiles {
		if t.Kind == game.KindPlate {
			plates[t.Cell] = true
		}
	}

	// Decoration first so it never hides a tile on a lower layer.
	for _, pass := range []bool{true, false} {
		for _, t := range v.Tiles {
			if (t.Kind == game.KindDecoration) != pass {
				continue
			}
			g, ok := kindGlyphs[t.Kind]
			if !ok {
				continue
			}
			if text := b.glyphs[t.ID]; text != "" {
				g.text = text
			}
			switch {
			case t.Kind == game.KindPushable && plates[t.Cell] && !t.Moving:
				g.color = core.ColorGreen
			case t.Kind == game.KindPortal && v.Satisfied:
				g.color = core.ColorBrightCyan
			}
			x, y := screenPos(t.Position, v.CellSize, origin)
			put(s, x, y, g)
		}
	}

	px, py := screenPos(v.Player.Transform.Position, v.CellSize, origin)
	player := glyph{text: playerGlyphs[v.Facing], color: core.ColorBrightCyan}
	if player.text == "" {
		player.text = "@@"
	}
	put(s, px, py, player)

	if v.Mode == game.ModeEdit {
		drawCursor(s, v.Editor.Cursor, origin)
	} else {
		applyLight(s, v, px+1, py)
	}
	applyFade(s, v.Darkness)

	if v.Phase == game.PhasePauseMessage && v.Message != "" {
		s.DrawTextCentered(s.Height()/2, v.Message, core.ColorBrightYellow)
	}
}

// viewOrigin returns the grid cell drawn at the top-left corner. A level
// smaller than the screen is centered; a larger one follows the camera.
func viewOrigin(v game.View, cols, rows int) core.Cell {
	axis := func(target float64, size, visible int) int {
		if size <= visible {
			return -(visible - size) / 2
		}
		o := int(target/v.CellSize) - visible/2
		return core.Clamp(o, 0, size-visible)
	}
	return core.Cell{
		X: axis(v.Camera.Target.X, v.Columns, cols),
		Y: axis(v.Camera.Target.Y, v.Rows, rows),
	}
}

// screenPos converts a world position to a screen column and row.
func screenPos(p core.Vec2, cellSize float64, origin core.Cell) (int, int) {
	x := int(math.Round(p.X/(cellSize/cellWidth))) - origin.X*cellWidth
	y := int(math.Round(p.Y/cellSize)) - origin.Y
	return x, y
}

func put(s *core.Screen, x, y int, g glyph) {
	for i, r := range []rune(g.text) {
		if i >= cellWidth {
			break
		}
		s.Set(x+i, y, r, g.color)
	}
}

func drawCursor(s *core.Screen, cell, origin core.Cell) {
	x := (cell.X - origin.X) * cellWidth
	y := cell.Y - origin.Y
	for i := 0; i < cellWidth; i++ {
		c := s.GetCell(x+i, y)
		r := c.Rune
		if r == ' ' || r == 0 {
			r = []rune("<>")[i]
		}
		s.Set(x+i, y, r, core.ColorBrightYellow)
	}
}

// applyLight dims everything beyond the light radius around column px,
// row py and blanks what lies beyond twice the radius.
func applyLight(s *core.Screen, v game.View, px, py int) {
	if math.IsInf(v.LightRadius, 1) || v.LightRadius <= 0 {
		return
	}
	radius := v.LightRadius / v.CellSize
	for y, h := 0, s.Height(); y < h; y++ {
		for x, w := 0, s.Width(); x < w; x++ {
			dx := float64(x-px) / cellWidth
			dy := float64(y - py)
			d := math.Hypot(dx, dy)
			switch {
			case d > 2*radius:
				s.Set(x, y, ' ', core.ColorDefault)
			case d > radius:
				if c := s.GetCell(x, y); c.Rune != ' ' {
					s.Set(x, y, c.Rune, core.ColorDim)
				}
			}
		}
	}
}

// applyFade blanks a dithered share of the screen matching darkness.
func applyFade(s *core.Screen, darkness float64) {
	if darkness <= 0 {
		return
	}
	for y, h := 0, s.Height(); y < h; y++ {
		for x, w := 0, s.Width(); x < w; x++ {
			if float64((x*7+y*13)%16)/16 < darkness {
				s.Set(x, y, ' ', core.ColorDefault)
			}
		}
	}
}
