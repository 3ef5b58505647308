package tui

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func newTestModel(t *testing.T, g *snake.Game) Model {
	t.Helper()
	m := NewModel(g, g.Preset().RuntimeConfig(42))
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the frame ticker")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"letter w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionNone},
		{"letter q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if a := keys.Action(tc.msg); a != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), a, tc.expected)
			}
		})
	}
}

func TestOneKeyPolledPerFrame(t *testing.T) {
	g := snake.NewClassic()
	m := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("a running game should schedule the next tick")
	}
	if snap := g.Snapshot(); snap.HeadX != 0 || snap.HeadY != 1 {
		t.Errorf("head after first frame = (%d,%d), expected (0,1)", snap.HeadX, snap.HeadY)
	}

	m, _ = update(t, m, TickMsg{})
	if snap := g.Snapshot(); snap.HeadX != 1 || snap.HeadY != 1 {
		t.Errorf("head after second frame = (%d,%d), expected (1,1)", snap.HeadX, snap.HeadY)
	}

	if m.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", m.Frames())
	}
}

func TestMinimalSessionStopsOnFood(t *testing.T) {
	g := snake.NewMinimal()
	m := newTestModel(t, g)

	for i := 0; i < 9; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	for i := 0; i < 9; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	for i := 0; i < 18; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if m.Finished() {
		t.Fatal("session should still run while the head moves onto the food")
	}

	m, cmd := update(t, m, TickMsg{})
	if !m.Finished() {
		t.Fatal("session should finish once the head is on the food")
	}
	if cmd == nil {
		t.Fatal("finishing should schedule the post-game delay")
	}
	if m.Frames() != 18 {
		t.Errorf("Frames() = %d, expected 18", m.Frames())
	}

	// No more frames after the end.
	m, cmd = update(t, m, TickMsg{})
	if cmd != nil || m.Frames() != 18 {
		t.Errorf("ticks after the end should be ignored, frames = %d", m.Frames())
	}

	_, cmd = update(t, m, gameOverMsg{})
	if cmd == nil {
		t.Fatal("post-game delay should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("post-game delay should produce tea.QuitMsg")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, snake.NewClassic())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if !m.Interrupted() {
		t.Error("Interrupted() should be true after ctrl+c")
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestViewShowsFrameAndScore(t *testing.T) {
	m := newTestModel(t, snake.NewClassic())

	view := ansiPattern.ReplaceAllString(m.View(), "")
	lines := strings.Split(view, "\n")

	if len(lines) != 13 {
		t.Fatalf("view has %d lines, expected 13", len(lines))
	}
	if !strings.HasPrefix(lines[0], "0") {
		t.Errorf("first line = %q, expected the snake at column 0", lines[0])
	}
	if !strings.Contains(lines[12], "Score: 0") {
		t.Errorf("last line = %q, expected the score", lines[12])
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetCell(0, 0, core.Cell{Rune: '0', Color: core.ColorBrightGreen})
	s.SetCell(1, 0, core.Cell{Rune: 'b', Color: core.ColorBrightRed})
	s.DrawText(0, 1, "----")

	plain := ansiPattern.ReplaceAllString(RenderScreen(s), "")
	if plain != s.String() {
		t.Errorf("RenderScreen text = %q, expected %q", plain, s.String())
	}
}
