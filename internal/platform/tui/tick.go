// Package tui provides the Bubble Tea integration for the tank arena.
// It handles the terminal UI loop, input mapping, and match orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one step.
func tickCmd(step time.Duration) tea.Cmd {
	if step <= 0 {
		step = core.DefaultTick
	}
	return tea.Tick(step, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
