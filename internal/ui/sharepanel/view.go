package sharepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

const buttonGap = 1

type button struct {
	target     Target
	text       string
	start, end int // content columns, end exclusive
}

// buttons renders the button row and records where each button lands. Mouse
// hit testing uses the same spans.
func (m *Model) buttons() []button {
	s := styles.T().S()
	out := make([]button, 0, len(Targets))
	col := 0
	for i, t := range Targets {
		style := s.Button
		if t == m.focus {
			style = s.ButtonFocus
		}
		text := style.Render(string(rune('1'+i)) + " " + icons.Share(t.String()) + t.Label())
		w := lipgloss.Width(text)
		out = append(out, button{target: t, text: text, start: col, end: col + w})
		col += w + buttonGap
	}
	return out
}

// View implements popup.Popup.
func (m *Model) View() string {
	return m.Overlay(m.body())
}

func (m *Model) body() string {
	s := styles.T().S()
	innerW, _ := m.InnerSize()

	lines := make([]string, 0, bodyRows)
	if m.track == nil {
		lines = append(lines, s.Muted.Render("Nothing playing"))
	} else {
		lines = append(lines, s.Title.Render(render.Truncate(m.track.Label(), innerW)))
	}
	if m.last != nil && m.track != nil {
		text := fmt.Sprintf("Shared via %s %s", m.last.Target.Label(), humanize.Time(m.last.At))
		lines = append(lines, s.Muted.Render(render.Truncate(text, innerW)))
	} else {
		lines = append(lines, "")
	}

	btns := m.buttons()
	texts := make([]string, len(btns))
	for i, b := range btns {
		texts[i] = b.text
	}
	lines = append(lines, strings.Join(texts, strings.Repeat(" ", buttonGap)))

	if link, err := m.Link(); err == nil {
		lines = append(lines, s.Subtle.Render(render.Truncate(link, innerW)))
	} else {
		lines = append(lines, "")
	}

	switch {
	case m.status == "":
		lines = append(lines, "")
	case m.statusErr:
		lines = append(lines, s.Error.Render(render.Truncate(m.status, innerW)))
	default:
		lines = append(lines, s.Success.Render(render.Truncate(m.status, innerW)))
	}
	return strings.Join(lines, "\n")
}
