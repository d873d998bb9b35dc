// Package tui provides the Bubble Tea integration for the arcade platform.
// It runs a host.Session in the terminal, turns key presses into held
// buttons and draws the frame with half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// minTick keeps a zero or negative interval from spinning the event loop.
const minTick = time.Millisecond

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval < minTick {
		interval = minTick
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
