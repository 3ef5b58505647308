package core

import "time"

// RuntimeConfig contains configuration passed to a game at initialization.
// Values come from the variant preset; only Seed differs between runs.
type RuntimeConfig struct {
	GridW         int           // Grid width in cells
	GridH         int           // Grid height in cells
	Frame         time.Duration // Fixed time between two frames
	GameOverDelay time.Duration // Pause after the terminal render before exiting
	Seed          int64         // RNG seed for food placement
}

// Grid returns the playfield described by the config.
func (c RuntimeConfig) Grid() Grid {
	return NewGrid(c.GridH, c.GridW)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has reached its terminal state
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	// Advanced is false when the frame ended the game before the snake moved.
	// The platform stops drawing regular frames from that point on.
	Advanced bool
}
