// Package tui runs the snake game in a terminal with Bubble Tea.
// It maps keys and mouse drags to game actions, drives display frames from
// Bubble Tea ticks and keeps the session round list.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to drive display frames.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// Late ticks are fine: the frame clock counts how many frames really elapsed.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
