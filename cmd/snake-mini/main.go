// snake-mini is the minimal terminal snake: a single cell roams a wrapping
// 25x80 grid and the session ends as soon as it reaches the food.
package main

import (
	"github.com/vovakirdan/tui-snake/internal/cli"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

func main() {
	cli.Execute(cli.NewRootCommand(cli.Options{
		Variant: "minimal",
		Use:     "snake-mini",
		Short:   "Minimal terminal snake",
		Long: `Steer a single cell with the arrow keys. The session ends when it
reaches the b.

Controls:
  Arrow keys  - Steer
  Ctrl+C      - Quit`,
	}))
}
