package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is an ordered body of cells on a toroidal grid, head first.
type Snake struct {
	grid    core.Grid
	body    []core.Point // Head at index 0
	heading Heading
}

// NewSnake creates a one-cell snake at start heading right.
func NewSnake(grid core.Grid, start core.Point) *Snake {
	return &Snake{
		grid:    grid,
		body:    []core.Point{grid.Wrap(start)},
		heading: HeadingRight,
	}
}

// Head returns the first body cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of body cells, duplicates included.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Heading returns the current heading.
func (s *Snake) Heading() Heading {
	return s.heading
}

// ChangeDirection sets the heading. Reversing into the body is allowed.
func (s *Snake) ChangeDirection(h Heading) {
	s.heading = h
}

// Advance pushes a new head one cell along the heading and drops the tail.
// The length is unchanged; a preceding Grow leaves one extra segment.
func (s *Snake) Advance() {
	dx, dy := s.heading.Delta()
	next := make([]core.Point, len(s.body))
	next[0] = s.grid.Step(s.Head(), dx, dy)
	copy(next[1:], s.body[:len(s.body)-1])
	s.body = next
}

// Grow duplicates the tail cell.
func (s *Snake) Grow() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// Occupies checks if any body cell equals p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// SelfIntersects reports whether two distinct body positions share a cell.
func (s *Snake) SelfIntersects() bool {
	for i := range s.body {
		for j := i + 1; j < len(s.body); j++ {
			if s.body[i] == s.body[j] {
				return true
			}
		}
	}
	return false
}
