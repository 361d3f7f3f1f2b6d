// Package tui hosts the runner in a terminal with Bubble Tea. It drives the
// fixed-step loop from ticks, turns key presses into key events, draws the
// screen buffer and implements the game's control overlay.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per display refresh.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
