// snake is the classic terminal snake: eat to grow, wrap around the edges,
// and the game ends when the snake runs into itself.
//
// Usage:
//
//	snake           - Play on a 12x40 grid
//
// Controls:
//
//	Arrow keys      - Steer
//	Ctrl+C          - Quit
package main

import (
	"github.com/vovakirdan/tui-snake/internal/cli"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

func main() {
	cli.Execute(cli.NewRootCommand(cli.Options{
		Variant: "classic",
		Use:     "snake",
		Short:   "Classic terminal snake",
		Long: `Steer the snake with the arrow keys. Each b you eat adds a segment
and a point; the edges wrap around. Running into your own body ends
the game.

Controls:
  Arrow keys  - Steer
  Ctrl+C      - Quit`,
	}))
}
