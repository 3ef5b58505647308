// Package registry maps variant IDs to game factories.
// Variants register themselves from init(); the entry points look them up
// by the ID baked into each binary.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknown is returned by Create for an ID nobody registered.
var ErrUnknown = errors.New("registry: unknown variant")

// Game is what the terminal platform drives, one Step per frame.
// Implementations never touch the terminal themselves.
type Game interface {
	ID() string
	Title() string

	// Size returns the screen size (in cells) a frame needs.
	Size() (width, height int)

	// Reset builds a fresh session from cfg. Called once before the first frame.
	Reset(cfg core.RuntimeConfig)

	// Step runs one frame with the key polled for it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register adds a factory under id.
// It panics on a duplicate id or when the factory builds a game with another ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	if got := f().ID(); got != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, got))
	}
	factories[id] = f
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}

// IDs returns the registered IDs in sorted order.
func IDs() []string {
	mu.RLock()
	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	mu.RUnlock()

	slices.Sort(ids)
	return ids
}
