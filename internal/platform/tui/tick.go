// Package tui provides the Bubble Tea front end for the puzzle.
// It runs the frame loop, maps keys to input frames and draws game views.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, capped at four frames.
func frameDelta(prev, now time.Time, fallback float64) float64 {
	if prev.IsZero() {
		return fallback
	}
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return fallback
	}
	return min(dt, 4*fallback)
}
