package snake

// GameStateType represents the current loop state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over" // classic: self-collision
	StateEnded    GameStateType = "ended"     // minimal: head reached the food
)

// Snapshot captures the game state for tests and the session log.
type Snapshot struct {
	Frame    uint64
	Rules    string
	State    GameStateType
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Heading  Heading
	FoodX    int
	FoodY    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	if g.over {
		state = StateGameOver
		if g.rules == Minimal {
			state = StateEnded
		}
	}

	snap := Snapshot{
		Frame: g.frame,
		Rules: g.rules.String(),
		State: state,
		Score: g.Score(),
	}
	if g.snake != nil {
		head := g.snake.Head()
		snap.SnakeLen = g.snake.Len()
		snap.HeadX, snap.HeadY = head.X, head.Y
		snap.Heading = g.snake.Heading()
	}
	if g.food != nil {
		food := g.food.Position()
		snap.FoodX, snap.FoodY = food.X, food.Y
	}
	return snap
}

// KeyVals returns the snapshot as alternating keys and values for structured logging.
func (s Snapshot) KeyVals() []any {
	return []any{
		"frame", s.Frame,
		"rules", s.Rules,
		"state", s.State,
		"length", s.SnakeLen,
		"head", [2]int{s.HeadX, s.HeadY},
		"heading", s.Heading,
		"food", [2]int{s.FoodX, s.FoodY},
	}
}

// SessionDetails reports the final snapshot to the terminal session.
func (g *Game) SessionDetails() []any {
	return g.Snapshot().KeyVals()
}
