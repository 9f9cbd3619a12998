// Package sharepanel provides the auto-hiding panel for sharing the current track.
package sharepanel

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/action"
	"github.com/llehouerou/ripple/internal/ui/autohide"
	"github.com/llehouerou/ripple/internal/ui/panel"
	"github.com/llehouerou/ripple/internal/ui/popup"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	maxWidth = 60
	// bodyRows: track, blank, buttons, link, status.
	bodyRows   = 5
	buttonsRow = 2
)

// Defaults is the component's own configuration layer.
func Defaults() panel.Config {
	return panel.Config{
		Title:     "Share",
		Hidden:    panel.Ptr(true),
		HideDelay: panel.Ptr(panel.DefaultHideDelay),
		Classes:   []string{styles.ClassSettings, styles.ClassShare},
	}
}

// Model is the share panel: a row of share buttons for the current track.
type Model struct {
	*panel.Panel
	hide *autohide.Controller
	keys keyMap

	baseURL string
	root    string
	track   *playlist.Track
	focus   Target

	status    string
	statusErr bool
	last      *LastShare

	copy func(string) error
	open func(string) error
}

// New builds the share panel. user is merged over Defaults; links are built
// against baseURL, or as file:// URLs when it is empty.
func New(user panel.Config, baseURL string, opts ...autohide.Option) (*Model, error) {
	cfg := panel.Merge(Defaults(), user)
	p, err := panel.New(cfg)
	if err != nil {
		return nil, err
	}
	hide, err := autohide.Attach(p, cfg.HideDelayMs(), opts...)
	if err != nil {
		return nil, err
	}
	return &Model{
		Panel:   p,
		hide:    hide,
		keys:    defaultKeyMap(),
		baseURL: baseURL,
		copy:    clipboard.WriteAll,
		open:    OpenBrowser,
	}, nil
}

// SetClipboard replaces the function the Link button copies with.
func (m *Model) SetClipboard(fn func(string) error) {
	m.copy = fn
}

// SetOpener replaces the function the other buttons open URLs with.
func (m *Model) SetOpener(fn func(string) error) {
	m.open = fn
}

// Controller returns the panel's auto-hide controller.
func (m *Model) Controller() *autohide.Controller {
	return m.hide
}

// SetTrack sets the track to share. root is the folder track paths are
// relative to in shared links.
func (m *Model) SetTrack(track *playlist.Track, root string) {
	if track != nil {
		t := *track
		track = &t
	}
	m.track = track
	m.root = root
	m.status = ""
	m.last = nil
}

// LastShare is the most recent time the current link was shared.
type LastShare struct {
	Target Target
	At     time.Time
}

// SetLastShare records when the current track was last shared; nil clears it.
func (m *Model) SetLastShare(last *LastShare) {
	m.last = last
}

// LastShare returns the recorded last share of the current track, or nil.
func (m *Model) LastShare() *LastShare {
	return m.last
}

// Track returns the track being shared, or nil.
func (m *Model) Track() *playlist.Track {
	return m.track
}

// Focus returns the focused button.
func (m *Model) Focus() Target {
	return m.focus
}

// SetFocus focuses a button.
func (m *Model) SetFocus(t Target) {
	if t >= Facebook && t <= Link {
		m.focus = t
	}
}

// Link returns the URL shared for the current track.
func (m *Model) Link() (string, error) {
	if m.track == nil {
		return "", ErrNoTrack
	}
	return TrackURL(*m.track, m.root, m.baseURL)
}

// Destroy detaches auto-hiding and releases the panel's subscriptions.
func (m *Model) Destroy() {
	m.hide.Detach()
	m.Panel.Destroy()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize lays the panel out along the bottom edge of a width×height screen.
func (m *Model) SetSize(width, height int) {
	w := min(maxWidth, width-2*ui.ScreenMargin)
	m.Layout(width, height, w, bodyRows+ui.PanelChromeHeight, panel.AnchorBottom)
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case action.Msg:
		if shared, ok := msg.Action.(Shared); ok && msg.Source == Source {
			m.setResult(shared)
		}
		return m, nil
	}
	return m, m.hide.Update(msg)
}

// HandlesKey reports whether the visible panel has a binding for msg.
func (m *Model) HandlesKey(msg tea.KeyMsg) bool {
	return m.Visible() && key.Matches(msg,
		m.keys.Prev, m.keys.Next, m.keys.Activate, m.keys.Direct, m.keys.Close)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.Visible() {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return m.Hide()
	case key.Matches(msg, m.keys.Prev):
		m.focus = Targets[(int(m.focus)+len(Targets)-1)%len(Targets)]
	case key.Matches(msg, m.keys.Next):
		m.focus = Targets[(int(m.focus)+1)%len(Targets)]
	case key.Matches(msg, m.keys.Activate):
		return tea.Batch(m.hide.Touch(), m.activate(m.focus))
	case key.Matches(msg, m.keys.Direct):
		m.focus = Targets[msg.Runes[0]-'1']
		return tea.Batch(m.hide.Touch(), m.activate(m.focus))
	default:
		return nil
	}
	return m.hide.Touch()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	cmd := m.HandleMouse(msg)
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || !m.Contains(msg.X, msg.Y) {
		return cmd
	}

	col, row := m.Local(msg.X, msg.Y)
	if row != buttonsRow {
		return cmd
	}
	for _, b := range m.buttons() {
		if col >= b.start && col < b.end {
			m.focus = b.target
			return tea.Batch(cmd, m.activate(b.target))
		}
	}
	return cmd
}

// activate hands the share off outside the update loop: clipboard and
// browser launches may block.
func (m *Model) activate(t Target) tea.Cmd {
	link, err := m.Link()
	if err != nil {
		return func() tea.Msg {
			return ActionMsg(Shared{Target: t, Err: err})
		}
	}

	title := m.track.Label()
	target := ShareURL(t, title, link)
	copyFn, openFn := m.copy, m.open
	return func() tea.Msg {
		var err error
		if t == Link {
			err = copyFn(target)
		} else {
			err = openFn(target)
		}
		return ActionMsg(Shared{Target: t, URL: target, Err: err})
	}
}

func (m *Model) setResult(s Shared) {
	m.statusErr = s.Err != nil
	switch {
	case s.Err != nil:
		m.status = s.Err.Error()
	case s.Target == Link:
		m.status = "Link copied to clipboard"
	default:
		m.status = "Opened " + s.Target.Label()
	}
}
