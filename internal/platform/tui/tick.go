// Package tui provides the Bubble Tea integration for the snake variants.
// It owns the terminal session, polls input, paces frames and turns the
// game's screen buffer into terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame to run one step of the game.
type TickMsg time.Time

// gameOverMsg is sent once the post-game delay has elapsed.
type gameOverMsg struct{}

// tickCmd returns a Bubble Tea command that sends the next frame tick.
func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gameOverCmd ends the session after the post-game delay.
func gameOverCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return gameOverMsg{}
	})
}
