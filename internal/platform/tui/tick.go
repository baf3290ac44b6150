// Package tui drives the simulation from a Bubble Tea program: it owns the
// frame clock, maps keys to simulation commands and renders snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame with the wall time of the tick.
type TickMsg time.Time

// tickCmd schedules the next frame.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures the real time between consecutive ticks. The
// simulation clamps whatever it is given, so no smoothing happens here.
type frameClock struct {
	last time.Time
}

// Delta returns the milliseconds since the previous tick, or 0 for the
// first tick.
func (c *frameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return float64(dt) / float64(time.Millisecond)
}
