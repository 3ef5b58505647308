package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single cell the snake is after.
type Food struct {
	grid core.Grid
	rng  *rand.Rand
	pos  core.Point
}

// NewFood creates food at the origin. Call Respawn or Place before use.
func NewFood(grid core.Grid, rng *rand.Rand) *Food {
	return &Food{grid: grid, rng: rng}
}

// Respawn samples uniform cells until one is not covered by the snake.
// It does not return if the snake covers the whole grid.
func (f *Food) Respawn(s *Snake) {
	for {
		p := core.Point{
			X: f.rng.Intn(f.grid.Width),
			Y: f.rng.Intn(f.grid.Height),
		}
		if !s.Occupies(p) {
			f.pos = p
			return
		}
	}
}

// Place puts the food on a fixed cell.
func (f *Food) Place(p core.Point) {
	f.pos = f.grid.Wrap(p)
}

// Position returns the food cell.
func (f *Food) Position() core.Point {
	return f.pos
}
