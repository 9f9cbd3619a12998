package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/state"
	"github.com/llehouerou/ripple/internal/ui/action"
	"github.com/llehouerou/ripple/internal/ui/panel"
	"github.com/llehouerou/ripple/internal/ui/sharepanel"
	"github.com/llehouerou/ripple/internal/ui/testutil"
)

type testEnv struct {
	state *state.Mock
	sched *testutil.FakeScheduler
}

func testPlaylist(n int) *playlist.Playlist {
	p := playlist.NewPlaylist("/music")
	for i := range n {
		p.Add(playlist.Track{
			Path:     fmt.Sprintf("/music/%02d.mp3", i+1),
			Title:    fmt.Sprintf("Song %d", i+1),
			Artist:   "Artist",
			Duration: 3 * time.Minute,
		})
	}
	return p
}

func newTestModelWith(t *testing.T, cfg *config.Config, st *state.Mock) (Model, *testEnv) {
	t.Helper()
	env := &testEnv{state: st, sched: testutil.NewFakeScheduler()}
	m, err := New(cfg, testPlaylist(5), st, WithScheduler(env.sched))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(m.Destroy)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, env
}

func newTestModel(t *testing.T) (Model, *testEnv) {
	t.Helper()
	return newTestModelWith(t, &config.Config{}, state.NewMock())
}

// updateModel is a helper that calls Update and returns the Model.
func updateModel(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	result, ok := newModel.(Model)
	if !ok {
		t.Fatalf("Update should return Model, got %T", newModel)
	}
	return result, cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// deliverActions runs cmd and feeds every resulting action back into the
// model. Only use it on commands that cannot contain a real timer.
func deliverActions(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range testutil.ExecuteAll(cmd) {
		if am, ok := msg.(action.Msg); ok {
			m, _ = updateModel(t, m, am)
		}
	}
	return m
}

func TestNew_RestoresSelection(t *testing.T) {
	st := state.NewMock()
	st.SetSelection(&state.MenuSelection{PlaylistPath: "/music", Index: 2, TrackPath: "/music/03.mp3"})

	m, _ := newTestModelWith(t, &config.Config{}, st)
	if m.Playlist.CurrentIndex() != 2 {
		t.Errorf("current index = %d, want 2", m.Playlist.CurrentIndex())
	}
	if m.Menu.Cursor() != 2 {
		t.Errorf("menu cursor = %d, want 2", m.Menu.Cursor())
	}
	if tr := m.Share.Track(); tr == nil || tr.Title != "Song 3" {
		t.Errorf("share track = %+v", tr)
	}
}

func TestNew_IgnoresStaleSelection(t *testing.T) {
	tests := []struct {
		name string
		sel  state.MenuSelection
	}{
		{"other playlist", state.MenuSelection{PlaylistPath: "/other", Index: 1, TrackPath: "/music/02.mp3"}},
		{"track moved", state.MenuSelection{PlaylistPath: "/music", Index: 1, TrackPath: "/music/05.mp3"}},
		{"out of range", state.MenuSelection{PlaylistPath: "/music", Index: 9, TrackPath: "/music/10.mp3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := state.NewMock()
			st.SetSelection(&tt.sel)
			m, _ := newTestModelWith(t, &config.Config{}, st)
			if m.Playlist.CurrentIndex() != -1 {
				t.Errorf("current index = %d, want -1", m.Playlist.CurrentIndex())
			}
		})
	}
}

func TestNew_RestoresShareTarget(t *testing.T) {
	st := state.NewMock()
	st.SetLastShareTarget("email")

	m, _ := newTestModelWith(t, &config.Config{}, st)
	if m.Share.Focus() != sharepanel.Email {
		t.Errorf("focus = %v, want email", m.Share.Focus())
	}
}

func TestNew_RejectsInvalidHideDelay(t *testing.T) {
	cfg := &config.Config{}
	cfg.SharePanel.HideDelay = panel.Ptr(-4)

	_, err := New(cfg, testPlaylist(1), state.NewMock())
	if !errors.Is(err, panel.ErrInvalidHideDelay) {
		t.Errorf("err = %v, want ErrInvalidHideDelay", err)
	}
}

func TestUpdate_WindowSizeLaysOutPanels(t *testing.T) {
	m, _ := newTestModel(t)

	if got := m.Menu.Bounds(); got != (panel.Rect{X: 23, Y: 1, Width: 56, Height: 11}) {
		t.Errorf("menu bounds = %+v", got)
	}
	if got := m.Share.Bounds(); got != (panel.Rect{X: 10, Y: 14, Width: 60, Height: 9}) {
		t.Errorf("share bounds = %+v", got)
	}
}

func TestKeys_TogglePanels(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = updateModel(t, m, keyMsg("p"))
	if !m.Menu.Visible() {
		t.Fatal("p should show the playlist menu")
	}
	m, _ = updateModel(t, m, keyMsg("S"))
	if !m.Share.Visible() {
		t.Fatal("S should show the share panel")
	}
	m, _ = updateModel(t, m, keyMsg("p"))
	if m.Menu.Visible() {
		t.Error("p should hide the visible menu")
	}
	m, _ = updateModel(t, m, keyMsg("S"))
	if m.Share.Visible() {
		t.Error("S should hide the visible share panel")
	}
}

func TestKeys_EscapeHidesAllPanels(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = updateModel(t, m, keyMsg("p"))
	m, _ = updateModel(t, m, keyMsg("S"))

	// The share panel takes esc first, then the menu.
	m, _ = updateModel(t, m, keyMsg("esc"))
	m, _ = updateModel(t, m, keyMsg("esc"))
	if m.Menu.Visible() || m.Share.Visible() {
		t.Errorf("menu=%v share=%v after esc", m.Menu.Visible(), m.Share.Visible())
	}
}

func TestKeys_NextPrevTrack(t *testing.T) {
	m, env := newTestModel(t)

	m, _ = updateModel(t, m, keyMsg("n"))
	m, _ = updateModel(t, m, keyMsg("n"))
	if m.Playlist.CurrentIndex() != 1 {
		t.Fatalf("current = %d, want 1", m.Playlist.CurrentIndex())
	}
	m, _ = updateModel(t, m, keyMsg("N"))
	if m.Playlist.CurrentIndex() != 0 {
		t.Errorf("current = %d, want 0", m.Playlist.CurrentIndex())
	}
	m, cmd := updateModel(t, m, keyMsg("N"))
	if cmd != nil || m.Playlist.CurrentIndex() != 0 {
		t.Error("previous at the first track should do nothing")
	}

	saved := env.state.SavedSelections()
	if len(saved) != 3 || saved[2].Index != 0 || saved[2].TrackPath != "/music/01.mp3" {
		t.Errorf("saved selections = %+v", saved)
	}
	if m.Notice == nil || !strings.Contains(m.Notice.Message, "Song 1") {
		t.Errorf("notice = %+v", m.Notice)
	}
}

func TestKeys_VisibleMenuTakesPagingKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = updateModel(t, m, keyMsg("p"))

	m, _ = updateModel(t, m, keyMsg("pgdown"))
	if m.Playlist.CurrentIndex() != -1 {
		t.Error("pgdown should page the open menu, not skip tracks")
	}

	m, _ = updateModel(t, m, keyMsg("esc"))
	m, _ = updateModel(t, m, keyMsg("pgdown"))
	if m.Playlist.CurrentIndex() != 0 {
		t.Error("pgdown should skip tracks once the menu is closed")
	}
}

func TestMenuSelect_PlaysAndPersists(t *testing.T) {
	m, env := newTestModel(t)
	m, _ = updateModel(t, m, keyMsg("p"))
	m, _ = updateModel(t, m, keyMsg("down"))
	m, cmd := updateModel(t, m, keyMsg("enter"))
	m = deliverActions(t, m, cmd)

	if m.Playlist.CurrentIndex() != 1 {
		t.Fatalf("current = %d, want 1", m.Playlist.CurrentIndex())
	}
	if !m.Menu.Visible() {
		t.Error("menu should stay open after a selection")
	}
	if tr := m.Share.Track(); tr == nil || tr.Path != "/music/02.mp3" {
		t.Errorf("share track = %+v", tr)
	}
	saved := env.state.SavedSelections()
	if len(saved) != 1 || saved[0].Index != 1 {
		t.Errorf("saved = %+v", saved)
	}
}

func TestShare_RecordsSuccessfulShare(t *testing.T) {
	m, env := newTestModel(t)
	var copied []string
	m.Share.SetClipboard(func(s string) error {
		copied = append(copied, s)
		return nil
	})

	m, _ = updateModel(t, m, keyMsg("n"))
	m, _ = updateModel(t, m, keyMsg("S"))
	m, cmd := updateModel(t, m, keyMsg("4"))
	m = deliverActions(t, m, cmd)

	if len(copied) != 1 || copied[0] != "file:///music/01.mp3" {
		t.Errorf("copied = %v", copied)
	}
	shares := env.state.Shares()
	if len(shares) != 1 || shares[0].Target != "link" {
		t.Errorf("shares = %+v", shares)
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "Link copied") {
		t.Error("share status not rendered")
	}
}

func TestShare_LastShareFollowsTrack(t *testing.T) {
	m, _ := newTestModel(t)
	m.Share.SetClipboard(func(string) error { return nil })

	m, _ = updateModel(t, m, keyMsg("n"))
	m, _ = updateModel(t, m, keyMsg("S"))
	if m.Share.LastShare() != nil {
		t.Fatal("fresh track should have no last share")
	}
	m, cmd := updateModel(t, m, keyMsg("4"))
	m = deliverActions(t, m, cmd)

	last := m.Share.LastShare()
	if last == nil || last.Target != sharepanel.Link {
		t.Fatalf("LastShare() = %+v, want link", last)
	}

	m, _ = updateModel(t, m, keyMsg("n"))
	if m.Share.LastShare() != nil {
		t.Error("next track was never shared")
	}
	m, _ = updateModel(t, m, keyMsg("N"))
	if last := m.Share.LastShare(); last == nil || last.Target != sharepanel.Link {
		t.Errorf("LastShare() after returning = %+v, want link", last)
	}
}

func TestShare_FailedHandOffIsNotRecorded(t *testing.T) {
	m, env := newTestModel(t)
	m.Share.SetOpener(func(string) error { return errors.New("xdg-open missing") })

	m, _ = updateModel(t, m, keyMsg("n"))
	m, _ = updateModel(t, m, keyMsg("S"))
	m, cmd := updateModel(t, m, keyMsg("1"))
	m = deliverActions(t, m, cmd)

	if len(env.state.Shares()) != 0 {
		t.Error("failed share was recorded")
	}
	if m.ErrorMsg != "" {
		t.Errorf("hand-off failures stay in the panel, got error popup %q", m.ErrorMsg)
	}
}

func TestShare_StoreErrorShowsPopupUntilKey(t *testing.T) {
	st := state.NewMock()
	st.SetShareError(errors.New("disk full"))
	m, _ := newTestModelWith(t, &config.Config{}, st)
	m.Share.SetClipboard(func(string) error { return nil })

	m, _ = updateModel(t, m, keyMsg("n"))
	m, _ = updateModel(t, m, keyMsg("S"))
	m, cmd := updateModel(t, m, keyMsg("4"))
	m = deliverActions(t, m, cmd)

	if !strings.Contains(m.ErrorMsg, "disk full") {
		t.Fatalf("ErrorMsg = %q", m.ErrorMsg)
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "disk full") {
		t.Error("error dialog not rendered")
	}

	m, _ = updateModel(t, m, keyMsg("x"))
	if m.ErrorMsg != "" {
		t.Error("any key should dismiss the error")
	}
	if !m.Share.Visible() {
		t.Error("dismissing the error should not reach the panels")
	}
}

func TestHelp_OpenAndClose(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = updateModel(t, m, keyMsg("?"))
	if !m.ShowHelp {
		t.Fatal("? should open help")
	}
	view := testutil.StripANSI(m.View())
	for _, want := range []string{"Help", "Toggle playlist menu"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}

	m, cmd := updateModel(t, m, keyMsg("esc"))
	m = deliverActions(t, m, cmd)
	if m.ShowHelp {
		t.Error("esc should close help")
	}
}

func TestNotification_ClearedByMatchingID(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = updateModel(t, m, keyMsg("n"))
	id := m.Notice.ID

	m, _ = updateModel(t, m, NotificationClearMsg{ID: id - 1})
	if m.Notice == nil {
		t.Fatal("stale clear removed the notification")
	}
	m, _ = updateModel(t, m, NotificationClearMsg{ID: id})
	if m.Notice != nil {
		t.Error("notification not cleared")
	}
}

func TestView_FillsScreen(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if got := strings.Count(view, "\n") + 1; got != 24 {
		t.Errorf("view has %d lines, want 24", got)
	}
	plain := testutil.StripANSI(view)
	for _, want := range []string{"ripple", "/music", "p playlist", "press p to pick one"} {
		if !strings.Contains(plain, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_FooterHintsFollowResolver(t *testing.T) {
	m, _ := newTestModel(t)
	m.Keys = keymap.NewResolver([]keymap.Binding{
		{Action: keymap.ActionTogglePlaylistMenu, Keys: []string{"m"}, Context: "global"},
		{Action: keymap.ActionQuit, Keys: []string{"x"}, Context: "global"},
	})

	plain := testutil.StripANSI(m.View())
	if !strings.Contains(plain, "m playlist · x quit") {
		t.Error("footer should list the keys actually bound")
	}
	if strings.Contains(plain, "S share") {
		t.Error("unbound actions should be left out of the footer")
	}
}

func TestView_EmptyBeforeWindowSize(t *testing.T) {
	m, err := New(&config.Config{}, testPlaylist(1), state.NewMock())
	if err != nil {
		t.Fatal(err)
	}
	defer m.Destroy()
	if m.View() != "" {
		t.Error("view before first WindowSizeMsg should be empty")
	}
}

type recordingNotifier struct {
	sent []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func TestShare_SendsDesktopNotification(t *testing.T) {
	rec := &recordingNotifier{}
	sched := testutil.NewFakeScheduler()
	m, err := New(&config.Config{}, testPlaylist(3), state.NewMock(), WithScheduler(sched), WithNotifier(rec))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Destroy()
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Share.SetClipboard(func(string) error { return nil })

	m, _ = updateModel(t, m, keyMsg("n"))
	m, _ = updateModel(t, m, keyMsg("S"))
	for range 2 {
		var cmd tea.Cmd
		m, cmd = updateModel(t, m, keyMsg("4"))
		for _, msg := range testutil.ExecuteAll(cmd) {
			var next tea.Cmd
			m, next = updateModel(t, m, msg)
			// Feed the notification result back as the runtime would.
			for _, res := range testutil.ExecuteAll(next) {
				if dn, ok := res.(DesktopNotifiedMsg); ok {
					m, _ = updateModel(t, m, dn)
				}
			}
		}
	}

	if len(rec.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(rec.sent))
	}
	if rec.sent[0].Title != "Shared via Link" || rec.sent[0].Body != "Artist - Song 1" {
		t.Errorf("first notification = %+v", rec.sent[0])
	}
	if rec.sent[1].ReplacesID != 1 {
		t.Errorf("second notification replaces %d, want 1", rec.sent[1].ReplacesID)
	}
}
