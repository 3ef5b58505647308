// Package snake implements the snake game in its classic and minimal variants.
// Both share one movement model on a toroidal grid; the Ruleset decides
// whether the snake grows, how the score is shown and what ends a session.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const gameOverText = "GAME OVER"

// Game implements one snake session.
type Game struct {
	preset config.Preset
	rules  Ruleset
	grid   core.Grid
	rng    *rand.Rand

	snake *Snake
	food  *Food

	frame uint64 // Frames in which the snake advanced
	over  bool

	snakeGlyph rune
	foodGlyph  rune
	emptyGlyph rune
}

// New creates a game for a validated preset.
func New(preset config.Preset) *Game {
	rules, err := RulesetFor(preset.Rules)
	if err != nil {
		rules = Classic
	}
	return &Game{
		preset:     preset,
		rules:      rules,
		snakeGlyph: config.Rune(preset.Glyphs.Snake),
		foodGlyph:  config.Rune(preset.Glyphs.Food),
		emptyGlyph: config.Rune(preset.Glyphs.Empty),
	}
}

// NewClassic creates a game from the embedded classic preset.
func NewClassic() *Game {
	return New(loadPreset("classic", config.DefaultClassicPreset))
}

// NewMinimal creates a game from the embedded minimal preset.
func NewMinimal() *Game {
	return New(loadPreset("minimal", config.DefaultMinimalPreset))
}

func loadPreset(id string, fallback func() config.Preset) config.Preset {
	p, err := config.Load(id)
	if err != nil {
		return fallback()
	}
	return p
}

func init() {
	registry.Register("classic", func() registry.Game {
		return NewClassic()
	})
	registry.Register("minimal", func() registry.Game {
		return NewMinimal()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title
}

// Preset returns the preset the game was built from.
func (g *Game) Preset() config.Preset {
	return g.preset
}

// Rules returns the ruleset in play.
func (g *Game) Rules() Ruleset {
	return g.rules
}

// Size returns the screen size needed to draw a frame: the grid plus
// one row for the score.
func (g *Game) Size() (width, height int) {
	return g.preset.Grid.Width, g.preset.Grid.Height + 1
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.grid = cfg.Grid()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frame = 0
	g.over = false

	g.snake = NewSnake(g.grid, g.preset.Start.Point())
	g.food = NewFood(g.grid, g.rng)
	if g.preset.Food != nil {
		g.food.Place(g.preset.Food.Point())
	} else {
		g.food.Respawn(g.snake)
	}
}

// Step runs one frame of the loop: heading change, terminal check,
// food check on the pre-move head, then the move itself.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if h, ok := headingFromInput(input); ok {
		g.snake.ChangeDirection(h)
	}

	if g.over || g.rules.Terminal(g.snake, g.food) {
		g.over = true
		return core.StepResult{State: g.State()}
	}

	if g.rules.Grows() && g.snake.Head() == g.food.Position() {
		g.food.Respawn(g.snake)
		g.snake.Grow()
	}

	g.snake.Advance()
	g.frame++

	return core.StepResult{State: g.State(), Advanced: true}
}

// Score returns the number of food cells eaten. The first segment is not counted.
func (g *Game) Score() int {
	if !g.rules.Scores() || g.snake == nil {
		return 0
	}
	return g.snake.Len() - 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.over,
	}
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.over && g.rules.Scores() {
		g.renderGameOver(dst)
		return
	}

	g.renderFrame(dst)
	if g.rules.Scores() {
		g.renderScore(dst)
	}
}

// renderFrame writes one glyph per grid cell in row-major order.
func (g *Game) renderFrame(dst *core.Screen) {
	food := g.food.Position()
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			switch {
			case g.snake.Occupies(p):
				dst.SetCell(x, y, core.Cell{Rune: g.snakeGlyph, Color: core.ColorBrightGreen})
			case p == food:
				dst.SetCell(x, y, core.Cell{Rune: g.foodGlyph, Color: core.ColorBrightRed})
			default:
				dst.SetCell(x, y, core.Cell{Rune: g.emptyGlyph, Color: core.ColorGray})
			}
		}
	}
}

// renderScore draws the score on the row below the grid.
func (g *Game) renderScore(dst *core.Screen) {
	dst.DrawText(g.grid.Width/2-5, g.grid.Height, fmt.Sprintf("Score: %d", g.Score()))
}

// renderGameOver draws the final screen.
func (g *Game) renderGameOver(dst *core.Screen) {
	x := g.grid.Width/2 - 5
	y := g.grid.Height / 2
	dst.DrawText(x, y, gameOverText)
	dst.DrawText(x, y+1, fmt.Sprintf("Score: %d", g.Score()))
}
