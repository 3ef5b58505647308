// Package core provides fundamental types and utilities shared by the snake
// variants and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Point is a cell coordinate. Points compare by value.
type Point struct {
	X, Y int
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a toroidal playfield: moving past one edge enters from the opposite edge.
// Both dimensions are fixed for a session and must be positive.
type Grid struct {
	Height int
	Width  int
}

// NewGrid creates a grid with the given height and width.
func NewGrid(height, width int) Grid {
	return Grid{Height: height, Width: width}
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Height * g.Width
}

// Contains returns true if p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap reduces p into the grid using modulo arithmetic on both axes.
// The result is always non-negative, so (-1, y) wraps to (Width-1, y).
func (g Grid) Wrap(p Point) Point {
	return Point{X: Mod(p.X, g.Width), Y: Mod(p.Y, g.Height)}
}

// Step moves p by (dx, dy) and wraps the result into the grid.
func (g Grid) Step(p Point, dx, dy int) Point {
	return g.Wrap(p.Add(dx, dy))
}

// Mod returns a modulo n with a result in [0, n) for positive n.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
