// Package playlistmenu provides the auto-hiding menu for navigating a playlist.
package playlistmenu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/action"
	"github.com/llehouerou/ripple/internal/ui/autohide"
	"github.com/llehouerou/ripple/internal/ui/panel"
	"github.com/llehouerou/ripple/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	maxWidth = 56
	// navRows is the nav button row plus the footer.
	navRows = 2
)

// Defaults is the component's own configuration layer.
func Defaults() panel.Config {
	return panel.Config{
		Title:     "Playlist",
		Hidden:    panel.Ptr(true),
		HideDelay: panel.Ptr(panel.DefaultHideDelay),
		Classes:   []string{"playlistmenu"},
	}
}

// Model is the playlist menu. It is a panel with an attached auto-hide
// controller; rows are playlist items followed by prev/next page buttons.
type Model struct {
	*panel.Panel
	hide   *autohide.Controller
	keys   keyMap
	list   *playlist.Playlist
	cursor int
	offset int
}

// New builds the menu for list. user is merged over Defaults, and the
// auto-hide controller is attached with the resulting delay.
func New(list *playlist.Playlist, user panel.Config, opts ...autohide.Option) (*Model, error) {
	cfg := panel.Merge(Defaults(), user)
	p, err := panel.New(cfg)
	if err != nil {
		return nil, err
	}
	hide, err := autohide.Attach(p, cfg.HideDelayMs(), opts...)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = playlist.NewPlaylist("")
	}
	return &Model{
		Panel: p,
		hide:  hide,
		keys:  defaultKeyMap(),
		list:  list,
	}, nil
}

// Controller returns the menu's auto-hide controller.
func (m *Model) Controller() *autohide.Controller {
	return m.hide
}

// Playlist returns the playlist shown by the menu.
func (m *Model) Playlist() *playlist.Playlist {
	return m.list
}

// SetPlaylist replaces the playlist and moves the cursor to its current track.
func (m *Model) SetPlaylist(list *playlist.Playlist) {
	m.list = list
	m.offset = 0
	m.SetCursor(max(list.CurrentIndex(), 0))
}

// Cursor returns the highlighted item index.
func (m *Model) Cursor() int {
	return m.cursor
}

// SetCursor highlights item i, clamped to the playlist.
func (m *Model) SetCursor(i int) {
	m.cursor = max(min(i, m.list.Len()-1), 0)
	m.ensureVisible()
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

// SetSize lays the menu out against the right edge of a width×height screen.
func (m *Model) SetSize(width, height int) {
	w := min(maxWidth, width-2*ui.ScreenMargin)
	h := max(m.list.Len(), 1) + navRows + ui.PanelChromeHeight
	m.Layout(width, height, w, h, panel.AnchorRight)
	m.ensureVisible()
}

// Update implements popup.Popup. Messages other than keys and mouse events
// are offered to the auto-hide controller.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, m.hide.Update(msg)
}

// HandlesKey reports whether the visible menu has a binding for msg.
func (m *Model) HandlesKey(msg tea.KeyMsg) bool {
	return m.Visible() && key.Matches(msg,
		m.keys.Up, m.keys.Down, m.keys.PrevPage, m.keys.NextPage, m.keys.Select, m.keys.Close)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.Visible() {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return m.Hide()
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.prevPage()
	case key.Matches(msg, m.keys.NextPage):
		m.nextPage()
	case key.Matches(msg, m.keys.Select):
		return tea.Batch(m.hide.Touch(), m.selectCmd())
	default:
		return nil
	}
	return m.hide.Touch()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	cmd := m.HandleMouse(msg)
	if !m.Contains(msg.X, msg.Y) || msg.Action != tea.MouseActionPress {
		return cmd
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.move(-1)
	case tea.MouseButtonWheelDown:
		m.move(1)
	case tea.MouseButtonLeft:
		return tea.Batch(cmd, m.click(msg.X, msg.Y))
	}
	return cmd
}

func (m *Model) click(x, y int) tea.Cmd {
	col, row := m.Local(x, y)
	rows := m.visibleRows()

	switch {
	case row >= 0 && row < rows:
		if i := m.offset + row; i < m.list.Len() {
			m.cursor = i
			return m.selectCmd()
		}
	case row == rows:
		innerW, _ := m.InnerSize()
		if col < innerW/2 {
			m.prevPage()
		} else {
			m.nextPage()
		}
	}
	return nil
}

func (m *Model) selectCmd() tea.Cmd {
	t := m.list.Track(m.cursor)
	if t == nil {
		return nil
	}
	return action.Cmd(Source, Select{Index: m.cursor, Track: *t})
}

func (m *Model) move(delta int) {
	m.SetCursor(m.cursor + delta)
}

func (m *Model) prevPage() {
	if m.offset == 0 {
		return
	}
	m.offset = max(m.offset-m.visibleRows(), 0)
	m.cursor = m.offset
}

func (m *Model) nextPage() {
	rows := m.visibleRows()
	if m.offset+rows >= m.list.Len() {
		return
	}
	m.offset += rows
	m.cursor = m.offset
}

func (m *Model) hasPrevPage() bool {
	return m.offset > 0
}

func (m *Model) hasNextPage() bool {
	return m.offset+m.visibleRows() < m.list.Len()
}

// visibleRows is the number of item rows that fit above the nav buttons.
func (m *Model) visibleRows() int {
	_, innerH := m.InnerSize()
	return max(innerH-navRows, 1)
}

// ensureVisible shows the page holding the cursor. Offsets stay multiples of
// visibleRows so the page indicator always matches the rows on screen.
func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	m.offset = m.cursor / rows * rows
}
