package countdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler delivers a message to the program after a delay.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// TickScheduler schedules with tea.Tick.
type TickScheduler struct{}

// After implements Scheduler.
func (TickScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
