package sharepanel

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui/action"
	"github.com/llehouerou/ripple/internal/ui/autohide"
	"github.com/llehouerou/ripple/internal/ui/panel"
	"github.com/llehouerou/ripple/internal/ui/styles"
	"github.com/llehouerou/ripple/internal/ui/testutil"
)

type recorder struct {
	copied []string
	opened []string
	err    error
}

func (r *recorder) copy(s string) error {
	r.copied = append(r.copied, s)
	return r.err
}

func (r *recorder) open(s string) error {
	r.opened = append(r.opened, s)
	return r.err
}

type fixture struct {
	m     *Model
	h     *testutil.PopupHarness
	sched *testutil.FakeScheduler
	rec   *recorder
}

// newFixture returns a visible panel laid out on an 80x24 screen:
// bounds {10,14,60,9}, buttons on screen row 19.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	sched := testutil.NewFakeScheduler()
	m, err := New(panel.Config{}, "https://music.example.org", autohide.WithScheduler(sched))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := &recorder{}
	m.SetClipboard(rec.copy)
	m.SetOpener(rec.open)
	m.SetTrack(&playlist.Track{Path: "/music/song.mp3", Title: "Song", Artist: "Artist"}, "/music")
	m.SetSize(80, 24)
	m.Show()
	return &fixture{m: m, h: testutil.NewPopupHarness(m), sched: sched, rec: rec}
}

// share runs cmd and feeds the Shared result back to the panel.
func (f *fixture) share(t *testing.T, cmd tea.Cmd) Shared {
	t.Helper()
	for _, msg := range testutil.ExecuteAll(cmd) {
		if am, ok := msg.(action.Msg); ok && am.Source == Source {
			f.h.SendMsg(am)
			return am.Action.(Shared)
		}
	}
	t.Fatal("no Shared action produced")
	return Shared{}
}

func TestNew_AppliesDefaults(t *testing.T) {
	m, err := New(panel.Config{}, "")
	if err != nil {
		t.Fatal(err)
	}
	cfg := m.Config()
	if cfg.Title != "Share" || m.Visible() {
		t.Errorf("title=%q visible=%v", cfg.Title, m.Visible())
	}
	if !slices.Contains(cfg.Classes, styles.ClassSettings) || !slices.Contains(cfg.Classes, styles.ClassShare) {
		t.Errorf("classes = %v", cfg.Classes)
	}
	if cfg.HideDelayMs() != 3000 {
		t.Errorf("hide delay = %d", cfg.HideDelayMs())
	}
}

func TestNew_RejectsInvalidDelay(t *testing.T) {
	_, err := New(panel.Config{HideDelay: panel.Ptr(-3)}, "")
	if !errors.Is(err, panel.ErrInvalidHideDelay) {
		t.Errorf("err = %v", err)
	}
}

func TestSetSize_AnchorsBottom(t *testing.T) {
	f := newFixture(t)
	want := panel.Rect{X: 10, Y: 14, Width: 60, Height: 9}
	if got := f.m.Bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestView_ShowsTrackButtonsAndLink(t *testing.T) {
	f := newFixture(t)
	for _, want := range []string{"Share", "Artist - Song", "1 Facebook", "2 Twitter", "3 Email", "4 Link", "https://music.example.org/song.mp3"} {
		if !f.h.ViewContains(want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_NothingPlaying(t *testing.T) {
	f := newFixture(t)
	f.m.SetTrack(nil, "")
	if !f.h.ViewContains("Nothing playing") {
		t.Error("expected placeholder without a track")
	}
}

func TestKeys_FocusWraps(t *testing.T) {
	f := newFixture(t)

	f.h.SendSpecialKey(tea.KeyLeft)
	if f.m.Focus() != Link {
		t.Errorf("focus = %v after left from first, want link", f.m.Focus())
	}
	f.h.SendKey("l")
	if f.m.Focus() != Facebook {
		t.Errorf("focus = %v after right from last, want facebook", f.m.Focus())
	}
}

func TestKeys_EnterOpensFocusedTarget(t *testing.T) {
	f := newFixture(t)
	f.h.SendSpecialKey(tea.KeyRight)

	shared := f.share(t, f.h.SendEnter())
	if shared.Target != Twitter || shared.Err != nil {
		t.Fatalf("shared = %+v", shared)
	}
	if len(f.rec.opened) != 1 || f.rec.opened[0] != shared.URL {
		t.Errorf("opened = %v", f.rec.opened)
	}
	if !f.h.ViewContains("Opened Twitter") {
		t.Error("status not shown")
	}
}

func TestKeys_DigitCopiesLink(t *testing.T) {
	f := newFixture(t)

	shared := f.share(t, f.h.SendKey("4"))
	if shared.Target != Link || f.m.Focus() != Link {
		t.Fatalf("shared = %+v focus = %v", shared, f.m.Focus())
	}
	if len(f.rec.copied) != 1 || f.rec.copied[0] != "https://music.example.org/song.mp3" {
		t.Errorf("copied = %v", f.rec.copied)
	}
	if len(f.rec.opened) != 0 {
		t.Errorf("link should not open a browser: %v", f.rec.opened)
	}
	if !f.h.ViewContains("Link copied to clipboard") {
		t.Error("status not shown")
	}
}

func TestShare_ErrorShownInStatus(t *testing.T) {
	f := newFixture(t)
	f.rec.err = errors.New("no clipboard utility")

	shared := f.share(t, f.h.SendKey("4"))
	if shared.Err == nil {
		t.Fatal("expected error")
	}
	if !f.h.ViewContains("no clipboard utility") {
		t.Error("error not shown")
	}
}

func TestShare_NoTrack(t *testing.T) {
	f := newFixture(t)
	f.m.SetTrack(nil, "")

	shared := f.share(t, f.h.SendEnter())
	if !errors.Is(shared.Err, ErrNoTrack) {
		t.Errorf("err = %v, want ErrNoTrack", shared.Err)
	}
	if len(f.rec.opened)+len(f.rec.copied) != 0 {
		t.Error("nothing should be handed off without a track")
	}
}

func TestMouse_ClickButton(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		x    int
		want Target
	}{
		{14, Facebook},
		{30, Twitter},
		{40, Email},
		{50, Link},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			shared := f.share(t, f.h.SendClick(tt.x, 19))
			if shared.Target != tt.want {
				t.Errorf("click at x=%d shared %v, want %v", tt.x, shared.Target, tt.want)
			}
		})
	}
}

func TestMouse_ClickBetweenButtonsDoesNothing(t *testing.T) {
	f := newFixture(t)

	// Column 12 of the content is the gap after Facebook.
	for _, msg := range testutil.ExecuteAll(f.h.SendClick(24, 19)) {
		if _, ok := msg.(action.Msg); ok {
			t.Error("click on the gap shared something")
		}
	}
	for _, msg := range testutil.ExecuteAll(f.h.SendClick(14, 17)) {
		if _, ok := msg.(action.Msg); ok {
			t.Error("click on the track row shared something")
		}
	}
}

func TestMouse_ButtonSpansMatchRender(t *testing.T) {
	f := newFixture(t)
	view := testutil.StripANSI(f.m.View())

	row := testutil.LineIndex(view, "1 Facebook")
	if row != 19 {
		t.Fatalf("button row rendered on line %d, want 19", row)
	}
	line := []rune(testutil.FindLine(view, "1 Facebook"))
	for _, b := range f.m.buttons() {
		// content starts after the left border and padding: x = 10 + 2
		label := b.target.Label()
		got := string(line[12+b.start : 12+b.end])
		if !testutil.ContainsLine(got, label) {
			t.Errorf("span %d-%d = %q, want it to hold %q", b.start, b.end, got, label)
		}
	}
}

func TestKeys_EscapeHides(t *testing.T) {
	f := newFixture(t)
	f.h.SendEscape()
	if f.m.Visible() {
		t.Error("esc should hide the panel")
	}
}

func TestAutoHide(t *testing.T) {
	f := newFixture(t)
	deliver := func(msg tea.Msg) { f.h.SendMsg(msg) }

	f.sched.AdvanceFunc(2*time.Second, deliver)
	f.h.SendSpecialKey(tea.KeyRight)
	f.sched.AdvanceFunc(2*time.Second, deliver)
	if !f.m.Visible() {
		t.Fatal("key activity should restart the window")
	}
	f.sched.AdvanceFunc(time.Second, deliver)
	if f.m.Visible() {
		t.Error("panel should hide after 3s idle")
	}
}

func TestDestroy(t *testing.T) {
	f := newFixture(t)
	f.m.Destroy()
	if f.m.Subscribers() != 0 {
		t.Errorf("subscribers = %d", f.m.Subscribers())
	}
}

func TestLastShare_RenderedUntilTrackChanges(t *testing.T) {
	f := newFixture(t)
	f.m.SetLastShare(&LastShare{Target: Twitter, At: time.Now().Add(-2 * time.Hour)})

	if msg := f.h.AssertViewContains("Shared via Twitter 2 hours ago"); msg != "" {
		t.Error(msg)
	}

	f.m.SetTrack(&playlist.Track{Path: "/music/other.mp3", Title: "Other"}, "/music")
	if f.m.LastShare() != nil {
		t.Error("SetTrack should forget the previous track's last share")
	}
	if msg := f.h.AssertViewNotContains("Shared via"); msg != "" {
		t.Error(msg)
	}
}

func TestView_ShareFrameUsesSettingsBorder(t *testing.T) {
	f := newFixture(t)
	view := testutil.StripANSI(f.m.View())
	if !strings.Contains(view, "┏") || strings.Contains(view, "╭") {
		t.Error("share panel should be framed with the thick settings border")
	}
}
