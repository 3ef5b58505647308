package core

import "strings"

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a fixed-size character buffer that one frame is drawn into.
// Games write single cells; the platform reads it back line by line.
// Writes outside the buffer are dropped and reads outside return a blank.
type Screen struct {
	width, height int
	cells         []Cell // Row-major, width*height
}

// NewScreen creates a blank screen of width x height cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	s.Clear()
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// SetCell writes c at (x, y).
func (s *Screen) SetCell(x, y int, c Cell) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = c
	}
}

// GetCell returns the cell at (x, y).
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes text left to right from (x, y) in the default color,
// one rune per cell. Runes that fall off the row are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.SetCell(x, y, Cell{Rune: r})
		x++
	}
}

// Line returns the cells of row y. The slice aliases the buffer and must
// not be modified. Rows outside the screen are empty.
func (s *Screen) Line(y int) []Cell {
	if y < 0 || y >= s.height {
		return nil
	}
	return s.cells[y*s.width : (y+1)*s.width]
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	line := s.Line(y)
	if line == nil {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(len(line))
	for _, c := range line {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
