package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			s.Set(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("After Clear, String() = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(8, 0, "abc", ColorDefault)
	if s.Row(0) != "        ab" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}

	s.DrawTextCentered(1, "hi", ColorYellow)
	if s.Row(1) != "    hi    " {
		t.Errorf("Row(1) = %q, expected centered text", s.Row(1))
	}
	if s.GetCell(4, 1).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenRecolor(t *testing.T) {
	s := NewScreen(3, 1)
	s.Set(0, 0, '#', ColorWhite)
	s.Recolor(ColorDim)

	if s.GetCell(0, 0).Color != ColorDim {
		t.Error("non-blank cell should be recolored")
	}
	if s.GetCell(1, 0).Color != ColorDefault {
		t.Error("blank cell should keep default color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(2, 2)
	s.Resize(5, 1)

	if s.Width() != 5 || s.Height() != 1 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.String(), "     ") {
		t.Errorf("resized screen should be blank, got %q", s.String())
	}
}
