package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 13)

	if s.Width() != 40 || s.Height() != 13 {
		t.Fatalf("size = %dx%d, expected 40x13", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 40) {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: '0', Color: ColorBrightGreen})
	if c := s.GetCell(5, 5); c.Rune != '0' || c.Color != ColorBrightGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected bright green '0'", c)
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"left of screen", -1, 0},
		{"right of screen", 10, 0},
		{"above screen", 0, -1},
		{"below screen", 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetCell(tc.x, tc.y, Cell{Rune: 'A'})
			if r := s.Get(tc.x, tc.y); r != ' ' {
				t.Errorf("Get(%d, %d) = %q, expected blank", tc.x, tc.y, r)
			}
		})
	}

	// Row 0 must be untouched by the clipped writes.
	if row := s.Row(0); strings.ContainsRune(row, 'A') {
		t.Errorf("row 0 = %q, clipped write leaked", row)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawText(0, 0, "----")
	s.SetCell(1, 1, Cell{Rune: 'b', Color: ColorBrightRed})

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("after Clear, (%d, %d) = %+v, expected plain blank", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score: 3")

	if got := s.Row(1)[2:10]; got != "Score: 3" {
		t.Errorf("row 1 = %q, expected Score: 3 at column 2", s.Row(1))
	}

	s.DrawText(18, 0, "GAME OVER")
	if s.Get(18, 0) != 'G' || s.Get(19, 0) != 'A' {
		t.Errorf("row 0 = %q, expected clipped GA at column 18", s.Row(0))
	}
	if s.Get(0, 1) != ' ' {
		t.Error("clipped text must not wrap onto the next row")
	}
}

func TestScreenLinesAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "0b-")
	s.DrawText(0, 1, "---")

	if line := s.Line(0); len(line) != 3 || line[1].Rune != 'b' {
		t.Errorf("Line(0) = %+v, expected 3 cells with b in the middle", line)
	}
	if s.Line(2) != nil {
		t.Error("Line outside the screen should be nil")
	}
	if row := s.Row(-1); row != "   " {
		t.Errorf("Row(-1) = %q, expected blanks", row)
	}

	expected := "0b-\n---"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}
