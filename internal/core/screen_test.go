package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("expected width 80, got %d", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("expected height 24, got %d", s.Height())
	}

	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	tests := []struct {
		name     string
		x, y     int
		r        rune
		expected rune
	}{
		{"origin", 0, 0, 'W', 'W'},
		{"last cell", 9, 9, 'C', 'C'},
		{"negative x", -1, 0, 'X', ' '},
		{"past width", 10, 0, 'X', ' '},
		{"past height", 0, 10, 'X', ' '},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Set(tc.x, tc.y, tc.r)
			if got := s.Get(tc.x, tc.y); got != tc.expected {
				t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 3, '@', ColorBrightGreen)

	cell := s.GetCell(2, 3)
	if cell.Rune != '@' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell() = %+v, expected '@' bright green", cell)
	}

	s.Set(2, 3, 'x')
	if s.GetCell(2, 3).Color != ColorDefault {
		t.Error("Set() should reset the color")
	}

	if out := s.GetCell(9, 9); out.Rune != ' ' || out.Color != ColorDefault {
		t.Errorf("GetCell() outside = %+v, expected blank", out)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'X', ColorRed)
	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear() cell = %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorCyan)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
		if s.GetCell(2+i, 1).Color != ColorCyan {
			t.Errorf("DrawText: wrong color at (%d, 1)", 2+i)
		}
	}

	s.DrawText(18, 0, "Hello", ColorDefault) // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("DrawText should clip at the right edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Moves", ColorDefault)

	// (20 - 5) / 2 = 7
	if !strings.HasPrefix(s.Row(2)[7:], "Moves") {
		t.Errorf("DrawTextCentered: row = %q", s.Row(2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "WWWWW", ColorDefault)
	s.DrawText(0, 1, "WS DW", ColorDefault)
	s.DrawText(0, 2, "WWWWW", ColorDefault)

	expected := "WWWWW\nWS DW\nWWWWW"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorRed)
	s.DrawText(0, 5, "World", ColorDefault)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("expected 3x3 after resize, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "Hel" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "Hel")
	}
	if s.GetCell(0, 0).Color != ColorRed {
		t.Error("Resize should keep cell colors")
	}

	s.Resize(6, 6)
	if s.Row(0) != "Hel   " {
		t.Errorf("Row(0) after grow = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 2, "Test", ColorDefault)

	if got := s.Row(2); got != "Test  " {
		t.Errorf("Row(2) = %q, expected %q", got, "Test  ")
	}
	if got := s.Row(7); got != "      " {
		t.Errorf("Row(7) = %q, expected blanks", got)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright_yellow"); !ok || c != ColorBrightYellow {
		t.Errorf("ParseColor(bright_yellow) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestActionIsMove(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsMove() {
			t.Errorf("%v.IsMove() = false", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionRestart, ActionDebug, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%v.IsMove() = true", a)
		}
	}
}
