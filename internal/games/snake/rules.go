package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Ruleset selects which features a session plays with.
type Ruleset int

const (
	// Classic grows on food, keeps score and ends on self-collision.
	Classic Ruleset = iota
	// Minimal moves a single cell and ends when the head reaches the food.
	Minimal
)

// RulesetFor maps a preset's rules name to a Ruleset.
func RulesetFor(r config.Rules) (Ruleset, error) {
	switch r {
	case config.RulesClassic:
		return Classic, nil
	case config.RulesMinimal:
		return Minimal, nil
	default:
		return Classic, fmt.Errorf("snake: unknown rules %q", r)
	}
}

// Grows reports whether eating food adds a segment (and relocates the food).
func (r Ruleset) Grows() bool {
	return r == Classic
}

// Scores reports whether a score row and a game over screen are drawn.
func (r Ruleset) Scores() bool {
	return r == Classic
}

// Terminal reports whether the session must stop before the next move.
func (r Ruleset) Terminal(s *Snake, f *Food) bool {
	if r == Minimal {
		return s.Head() == f.Position()
	}
	return s.SelfIntersects()
}

func (r Ruleset) String() string {
	switch r {
	case Classic:
		return "classic"
	case Minimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// Heading is the direction the head moves on the next advance.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// Delta returns the unit step of the heading. Y grows downwards.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// headingFromInput maps the arrow key of a frame to a heading.
// Any other key leaves the heading unchanged.
func headingFromInput(in core.InputFrame) (Heading, bool) {
	switch in.Action {
	case core.ActionUp:
		return HeadingUp, true
	case core.ActionDown:
		return HeadingDown, true
	case core.ActionLeft:
		return HeadingLeft, true
	case core.ActionRight:
		return HeadingRight, true
	}
	return HeadingRight, false
}
