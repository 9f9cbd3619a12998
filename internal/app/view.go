package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui/popup"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.renderNowPlaying()

	// Panels float over the screen; the share panel is drawn last, on top.
	view = popup.Compose(view, m.Menu.View(), m.Width, m.Height)
	view = popup.Compose(view, m.Share.View(), m.Width, m.Height)

	if m.ShowHelp {
		view = popup.Compose(view, m.Help.View(), m.Width, m.Height)
	}

	if m.ErrorMsg != "" {
		dialog := popup.Dialog{
			Title:   "Error",
			Content: m.ErrorMsg,
			Footer:  "Press any key to dismiss",
		}
		view = popup.Compose(view, dialog.Render(m.Width, m.Height), m.Width, m.Height)
	}

	return view
}

// renderNowPlaying draws the full-screen base view: exactly Height lines of
// Width columns.
func (m Model) renderNowPlaying() string {
	s := styles.T().S()
	w := m.Width

	lines := make([]string, 0, m.Height)
	lines = append(lines,
		render.Row(" "+styles.ApplyBoldGradient("ripple", styles.T().Primary, styles.T().Secondary),
			s.Muted.Render(render.Truncate(icons.FormatPlaylist(m.Playlist.Name()), max(w/2, 0)))+" ", w),
		s.Subtle.Render(render.Separator(w)),
		"",
	)

	if t := m.Playlist.Current(); t != nil {
		lines = append(lines, m.trackLines(*t)...)
	} else if m.Playlist.Len() == 0 {
		lines = append(lines, "   "+s.Muted.Render("No music files found"))
	} else {
		lines = append(lines, "   "+s.Muted.Render(fmt.Sprintf("%d tracks · press p to pick one", m.Playlist.Len())))
	}

	footer := []string{s.Subtle.Render(render.Separator(w))}
	if m.Notice != nil {
		footer = append(footer, " "+s.Success.Render(render.Truncate(m.Notice.Message, max(w-2, 0))))
	}
	footer = append(footer, " "+s.Muted.Render(render.Truncate(m.Keys.HintLine(keymap.FooterHints), max(w-2, 0))))

	for len(lines)+len(footer) < m.Height {
		lines = append(lines, "")
	}
	lines = append(lines, footer...)
	lines = lines[:min(len(lines), m.Height)]

	for i, line := range lines {
		line = render.TruncateANSI(line, w)
		lines[i] = line + strings.Repeat(" ", max(w-lipgloss.Width(line), 0))
	}
	return strings.Join(lines, "\n")
}

func (m Model) trackLines(t playlist.Track) []string {
	s := styles.T().S()
	width := max(m.Width-5, 0)

	lines := []string{"   " + s.Playing.Render(icons.Playing()+render.Truncate(icons.FormatAudio(t.Title), width-2))}

	var meta []string
	if t.Artist != "" {
		meta = append(meta, t.Artist)
	}
	if t.Album != "" {
		meta = append(meta, t.Album)
	}
	if len(meta) > 0 {
		lines = append(lines, "     "+s.Base.Render(render.Truncate(strings.Join(meta, " · "), width-2)))
	}

	info := fmt.Sprintf("track %d of %d", m.Playlist.CurrentIndex()+1, m.Playlist.Len())
	if t.Duration > 0 {
		info = playlist.FormatDuration(t.Duration) + " · " + info
	}
	lines = append(lines, "     "+s.Muted.Render(info))
	return lines
}
