package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/ui/action"
	"github.com/llehouerou/ripple/internal/ui/helpbindings"
	"github.com/llehouerou/ripple/internal/ui/playlistmenu"
	"github.com/llehouerou/ripple/internal/ui/sharepanel"
)

var errTrackGone = errors.New("track is no longer in the playlist")

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case playlistmenu.Source:
		return m.handlePlaylistMenuAction(msg.Action)
	case sharepanel.Source:
		return m.handleSharePanelAction(msg)
	case "helpbindings":
		return m.handleHelpBindingsAction(msg.Action)
	}
	return m, nil
}

// handlePlaylistMenuAction handles actions from the playlist menu.
func (m Model) handlePlaylistMenuAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case playlistmenu.Select:
		if m.Playlist.JumpTo(act.Index) == nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaylistSelect, errTrackGone)
			return m, nil
		}
		cmd := m.trackChanged()
		return m, cmd
	}
	return m, nil
}

// handleSharePanelAction shows the outcome in the panel and remembers
// successful shares.
func (m Model) handleSharePanelAction(msg action.Msg) (tea.Model, tea.Cmd) {
	act, ok := msg.Action.(sharepanel.Shared)
	if !ok {
		return m, nil
	}
	_, cmd := m.Share.Update(msg)

	if act.Err != nil {
		op := errmsg.OpShareOpen
		switch {
		case act.URL == "":
			op = errmsg.OpShareLink
		case act.Target == sharepanel.Link:
			op = errmsg.OpShareCopy
		}
		m.log.Warn(errmsg.Format(op, act.Err), "target", act.Target.String())
		return m, cmd
	}

	m.log.Info("shared track", "target", act.Target.String(), "url", act.URL)
	if err := m.recordShare(act); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpShareStore, err)
	} else {
		m.refreshLastShare()
	}
	return m, tea.Batch(cmd, m.desktopNotifyCmd(act))
}

// desktopNotifyCmd sends the share notification off the update loop.
func (m Model) desktopNotifyCmd(act sharepanel.Shared) tea.Cmd {
	t := m.Share.Track()
	if t == nil {
		return nil
	}
	n := notify.Shared(t.Path, t.Label(), act.Target.Label(), m.desktopID)
	notifier := m.notifier
	return func() tea.Msg {
		id, err := notifier.Notify(n)
		return DesktopNotifiedMsg{ID: id, Err: err}
	}
}

// handleHelpBindingsAction handles actions from the help popup.
func (m Model) handleHelpBindingsAction(a action.Action) (tea.Model, tea.Cmd) {
	if _, ok := a.(helpbindings.Close); ok {
		m.ShowHelp = false
	}
	return m, nil
}

// trackChanged refreshes everything that follows the current track.
func (m *Model) trackChanged() tea.Cmd {
	t := m.Playlist.Current()
	m.Menu.SetCursor(m.Playlist.CurrentIndex())
	m.setShareTrack()
	m.saveSelection()
	m.log.Debug("track changed", "index", m.Playlist.CurrentIndex(), "path", t.Path)
	return m.notify("Now playing: " + t.Label())
}
