package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Model is the Bubble Tea model running one snake session.
//
// Keys are queued as they arrive and exactly one is polled per tick, so a
// frame sees at most one heading change. When the game reports its terminal
// state the model stops ticking, keeps showing the final render for the
// post-game delay and then quits.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	pending   *core.InputQueue
	gameState core.GameState
	frames    int  // Frames in which the game advanced
	finished  bool // Terminal state reached, waiting out the delay
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(game.Size()),
		config:  cfg,
		keys:    DefaultKeyMap(),
		pending: &core.InputQueue{},
	}
}

// Init starts the game and the frame ticker.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.Frame)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()

	case gameOverMsg:
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues steering keys and handles quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.finished {
		m.pending.Push(action)
	}
	return m, nil
}

// handleTick runs one frame: poll one key, step the game, schedule the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	frame := core.NewInputFrame()
	if action := m.pending.Poll(); action != core.ActionNone {
		frame.Set(action)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	if result.Advanced {
		m.frames++
	}

	if m.gameState.GameOver {
		m.finished = true
		return m, gameOverCmd(m.config.GameOverDelay)
	}

	return m, tickCmd(m.config.Frame)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Frames returns the number of frames in which the game advanced.
func (m Model) Frames() int {
	return m.frames
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Finished reports whether the game reached its terminal state.
func (m Model) Finished() bool {
	return m.finished
}

// Interrupted reports whether the session was ended with the quit key.
func (m Model) Interrupted() bool {
	return m.quitting
}
