package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Notification represents a temporary notification message.
type Notification struct {
	ID      int64
	Message string
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}

// DesktopNotifiedMsg reports the outcome of a desktop notification.
type DesktopNotifiedMsg struct {
	ID  uint32
	Err error
}

// notify replaces the current notification and schedules its removal.
func (m *Model) notify(message string) tea.Cmd {
	m.noticeSeq++
	m.Notice = &Notification{ID: m.noticeSeq, Message: message}
	return NotificationClearCmd(m.noticeSeq)
}

func (m *Model) clearNotification(id int64) {
	if m.Notice != nil && m.Notice.ID == id {
		m.Notice = nil
	}
}
