package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/ui/action"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case action.Msg:
		m.log.Debug("ui action", "type", msg.Type())
		return m.handleUIAction(msg)

	case NotificationClearMsg:
		m.clearNotification(msg.ID)
		return m, nil

	case DesktopNotifiedMsg:
		if msg.Err != nil {
			m.log.Warn("desktop notification failed", "error", msg.Err)
			return m, nil
		}
		m.desktopID = msg.ID
		return m, nil
	}

	// Countdown fires and anything else the panels schedule for themselves.
	return m, m.updatePanels(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Menu.SetSize(msg.Width, msg.Height)
	m.Share.SetSize(msg.Width, msg.Height)
	m.Help.SetSize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) updatePanels(msg tea.Msg) tea.Cmd {
	_, menuCmd := m.Menu.Update(msg)
	_, shareCmd := m.Share.Update(msg)
	return tea.Batch(menuCmd, shareCmd)
}

// handleMouse gives every panel the pointer so each can track enter and
// leave. The share panel is drawn on top: a press it receives reaches the
// menu only as motion.
func (m Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	_, shareCmd := m.Share.Update(msg)

	menuMsg := msg
	if msg.Action == tea.MouseActionPress && m.Share.Contains(msg.X, msg.Y) {
		menuMsg.Action = tea.MouseActionMotion
		menuMsg.Button = tea.MouseButtonNone
	}
	_, menuCmd := m.Menu.Update(menuMsg)
	return tea.Batch(shareCmd, menuCmd)
}
