package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ErrSessionInit is returned when the terminal session cannot be acquired.
// No game state exists yet when it is returned.
var ErrSessionInit = errors.New("tui: terminal session could not be initialized")

// Summary describes a finished session.
type Summary struct {
	Frames      int
	State       core.GameState
	Interrupted bool
	Details     []any // Game-specific key/value pairs, nil if the game has none
}

// detailer is implemented by games that can describe their final state.
type detailer interface {
	SessionDetails() []any
}

// Play runs the registered variant id until its terminal state.
// A zero seed picks a time-based one.
func Play(id string, seed int64, logger *log.Logger) (Summary, error) {
	if !registry.Exists(id) {
		return Summary{}, fmt.Errorf("tui: variant %q is not registered (have %s)",
			id, strings.Join(registry.IDs(), ", "))
	}

	preset, err := config.Load(id)
	if err != nil {
		return Summary{}, err
	}

	game, err := registry.Create(id)
	if err != nil {
		return Summary{}, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := preset.RuntimeConfig(seed)

	logger.Debug("preset loaded",
		"variant", preset.ID,
		"title", game.Title(),
		"rules", preset.Rules,
		"grid", fmt.Sprintf("%dx%d", cfg.GridH, cfg.GridW),
		"frame", cfg.Frame,
		"seed", cfg.Seed,
	)

	w, h := game.Size()
	if tw, th, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && (tw < w || th < h) {
		logger.Warn("terminal smaller than the playfield",
			"terminal", fmt.Sprintf("%dx%d", tw, th),
			"needed", fmt.Sprintf("%dx%d", w, h),
		)
	}

	return Run(game, cfg)
}

// Run drives the game in a Bubble Tea program on the alternate screen.
func Run(game registry.Game, cfg core.RuntimeConfig) (Summary, error) {
	if err := checkTerminal(); err != nil {
		return Summary{}, err
	}

	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Summary{}, fmt.Errorf("tui: run: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Summary{}, nil
	}

	summary := Summary{
		Frames:      m.Frames(),
		State:       m.State(),
		Interrupted: m.Interrupted(),
	}
	if d, ok := game.(detailer); ok {
		summary.Details = d.SessionDetails()
	}
	return summary, nil
}

// checkTerminal fails with ErrSessionInit unless stdin and stdout are terminals.
func checkTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%w: stdin is not a terminal", ErrSessionInit)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: stdout is not a terminal", ErrSessionInit)
	}
	return nil
}
