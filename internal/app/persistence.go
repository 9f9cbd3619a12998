package app

import (
	"context"
	"time"

	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/state"
	"github.com/llehouerou/ripple/internal/ui/sharepanel"
)

const (
	shareStoreTimeout = 2 * time.Second
	shareHistoryScan  = 50
)

// restoreSelection jumps to the saved track if it belongs to the loaded
// playlist and is still at the saved position.
func (m *Model) restoreSelection() {
	sel, err := m.StateMgr.GetSelection()
	if err != nil {
		m.log.Warn(errmsg.Format(errmsg.OpStateLoad, err))
		return
	}
	if sel == nil || sel.PlaylistPath != m.Playlist.Name() {
		return
	}
	t := m.Playlist.Track(sel.Index)
	if t == nil || t.Path != sel.TrackPath {
		m.log.Debug("saved selection no longer matches playlist", "index", sel.Index, "path", sel.TrackPath)
		return
	}
	m.Playlist.JumpTo(sel.Index)
	m.Menu.SetCursor(sel.Index)
}

func (m *Model) restoreShareTarget() {
	name, err := m.StateMgr.LastShareTarget()
	if err != nil {
		m.log.Warn(errmsg.Format(errmsg.OpStateLoad, err))
		return
	}
	if target, ok := sharepanel.ParseTarget(name); ok {
		m.Share.SetFocus(target)
	}
}

// setShareTrack points the share panel at the current track.
func (m *Model) setShareTrack() {
	m.Share.SetTrack(m.Playlist.Current(), m.Playlist.Name())
	m.refreshLastShare()
}

// refreshLastShare looks up the newest history entry for the share panel's
// track. Entries match on the exact URL handed to the target.
func (m *Model) refreshLastShare() {
	t := m.Share.Track()
	link, err := m.Share.Link()
	if t == nil || err != nil {
		m.Share.SetLastShare(nil)
		return
	}
	records, err := m.StateMgr.RecentShares(shareHistoryScan)
	if err != nil {
		m.log.Warn(errmsg.Format(errmsg.OpStateLoad, err))
		return
	}
	for _, r := range records {
		target, ok := sharepanel.ParseTarget(r.Target)
		if ok && r.URL == sharepanel.ShareURL(target, t.Label(), link) {
			m.Share.SetLastShare(&sharepanel.LastShare{Target: target, At: r.SharedAt})
			return
		}
	}
	m.Share.SetLastShare(nil)
}

// saveSelection persists the current track. Saves are debounced by the
// state manager.
func (m Model) saveSelection() {
	t := m.Playlist.Current()
	if t == nil {
		return
	}
	m.StateMgr.SaveSelection(state.MenuSelection{
		PlaylistPath: m.Playlist.Name(),
		Index:        m.Playlist.CurrentIndex(),
		TrackPath:    t.Path,
	})
}

func (m Model) recordShare(s sharepanel.Shared) error {
	ctx, cancel := context.WithTimeout(context.Background(), shareStoreTimeout)
	defer cancel()
	return m.StateMgr.RecordShare(ctx, s.Target.String(), s.URL)
}
