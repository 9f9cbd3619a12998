package playlistmenu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

const (
	prevLabel = "◀ prev"
	nextLabel = "next ▶"
)

// View implements popup.Popup. It renders the menu at its screen position,
// or nothing while hidden.
func (m *Model) View() string {
	return m.Overlay(m.body())
}

func (m *Model) body() string {
	innerW, _ := m.InnerSize()
	rows := m.visibleRows()

	lines := make([]string, 0, rows+navRows)
	for i := range rows {
		idx := m.offset + i
		switch {
		case idx < m.list.Len():
			lines = append(lines, m.itemRow(idx, innerW))
		case idx == 0:
			lines = append(lines, styles.T().S().Muted.Render("No tracks"))
		default:
			lines = append(lines, "")
		}
	}
	lines = append(lines, m.navRow(innerW), m.footer(innerW))
	return strings.Join(lines, "\n")
}

func (m *Model) itemRow(idx, width int) string {
	s := styles.T().S()
	t := m.list.Track(idx)

	marker := strings.Repeat(" ", lipgloss.Width(icons.Playing()))
	if idx == m.list.CurrentIndex() {
		marker = icons.Playing()
	}
	number := t.TrackNumber
	if number == 0 {
		number = idx + 1
	}

	var duration string
	if t.Duration > 0 {
		duration = playlist.FormatDuration(t.Duration)
	}
	labelWidth := width - len(duration) - 1
	label := render.Truncate(fmt.Sprintf("%s%2d. %s", marker, number, t.Label()), labelWidth)
	row := render.Row(label, duration, width)

	switch {
	case idx == m.cursor:
		return s.Cursor.Render(row)
	case idx == m.list.CurrentIndex():
		return s.Playing.Render(row)
	default:
		return s.Base.Render(row)
	}
}

func (m *Model) navRow(width int) string {
	s := styles.T().S()

	prev := s.Subtle.Render(prevLabel)
	if m.hasPrevPage() {
		prev = s.Button.Render(prevLabel)
	}
	next := s.Subtle.Render(nextLabel)
	if m.hasNextPage() {
		next = s.Button.Render(nextLabel)
	}

	rows := m.visibleRows()
	pages := max((m.list.Len()+rows-1)/rows, 1)
	page := s.Muted.Render(fmt.Sprintf("%d/%d", m.offset/rows+1, pages))

	middle := max(width-lipgloss.Width(prev)-lipgloss.Width(next), 0)
	return prev + render.Center(page, middle) + next
}

func (m *Model) footer(width int) string {
	n := m.list.Len()
	text := fmt.Sprintf("%d tracks · %s", n, humanize.Bytes(uint64(m.list.TotalSize())))
	if n == 1 {
		text = "1 track · " + humanize.Bytes(uint64(m.list.TotalSize()))
	}
	if d := m.list.TotalDuration(); d > 0 {
		text += " · " + playlist.FormatDuration(d)
	}
	return styles.T().S().Subtle.Render(render.Truncate(text, width))
}
