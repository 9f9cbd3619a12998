// Package action defines the messages UI components send to the application.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// ActionType returns a string identifier for logging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
type Msg struct {
	Source string // Component name: "playlistmenu", "sharepanel", "helpbindings"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command that delivers the action from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}

// Type returns "source.action" for logging.
func (m Msg) Type() string {
	if m.Action == nil {
		return m.Source
	}
	return m.Source + "." + m.Action.ActionType()
}
