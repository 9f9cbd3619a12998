package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/keymap"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle error overlay - any key dismisses it
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		return m, nil
	}

	// Handle help popup
	if m.ShowHelp {
		var cmd tea.Cmd
		_, cmd = m.Help.Update(msg)
		return m, cmd
	}

	// Visible panels get first pick, topmost first.
	if m.Share.HandlesKey(msg) {
		_, cmd := m.Share.Update(msg)
		return m, cmd
	}
	if m.Menu.HandlesKey(msg) {
		_, cmd := m.Menu.Update(msg)
		return m, cmd
	}

	return m.handleAction(m.Keys.Resolve(msg.String()))
}

func (m Model) handleAction(a keymap.Action) (tea.Model, tea.Cmd) {
	switch a {
	case keymap.ActionQuit:
		m.log.Info("quit")
		return m, tea.Quit

	case keymap.ActionHelp:
		m.ShowHelp = true
		m.Help.SetContexts([]string{"global", "track", "playlistmenu", "sharepanel"})
		return m, nil

	case keymap.ActionTogglePlaylistMenu:
		if !m.Menu.Visible() {
			m.Menu.SetCursor(m.Playlist.CurrentIndex())
		}
		return m, m.Menu.Toggle()

	case keymap.ActionToggleSharePanel:
		if !m.Share.Visible() {
			m.setShareTrack()
		}
		return m, m.Share.Toggle()

	case keymap.ActionHidePanels:
		return m, tea.Batch(m.Menu.Hide(), m.Share.Hide())

	case keymap.ActionNextTrack:
		if m.Playlist.Next() == nil {
			return m, nil
		}
		cmd := m.trackChanged()
		return m, cmd

	case keymap.ActionPrevTrack:
		if m.Playlist.Prev() == nil {
			return m, nil
		}
		cmd := m.trackChanged()
		return m, cmd
	}
	return m, nil
}
