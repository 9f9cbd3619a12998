package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// Dialog is a centered message box with title, content and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
}

// Render returns the dialog centered on a termWidth×termHeight screen.
func (d Dialog) Render(termWidth, termHeight int) string {
	s := styles.T().S()

	width := max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer)) + 2
	width = min(width, max(termWidth-4, 1))

	lines := make([]string, 0, strings.Count(d.Content, "\n")+5)
	if d.Title != "" {
		lines = append(lines, render.Center(s.Title.Render(d.Title), width), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, render.TruncateAndPad(line, width))
	}
	if d.Footer != "" {
		lines = append(lines, "", render.Center(s.Subtle.Render(d.Footer), width))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Error).
		Padding(0, 1).
		Width(width + 2).
		Render(strings.Join(lines, "\n"))
	return Center(box, termWidth, termHeight)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Center centers pre-rendered content on the screen, padding it with blank
// space above and to the left so it can be passed to Compose.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := maxLineWidth(content)

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// RenderBordered wraps content in a rounded border sized to fit it (bounded
// by the screen) and centers the result.
func RenderBordered(content string, screenW, screenH int) string {
	width := min(maxLineWidth(content)+6, screenW-4)
	height := min(strings.Count(content, "\n")+1+4, screenH-4)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// Compose overlays popupView on top of base. Blank cells of the overlay are
// transparent: on each line only the span between the first and last visible
// non-space characters replaces the base. ANSI styling on both sides is kept.
func Compose(base, popupView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")

	for i, overlayLine := range strings.Split(popupView, "\n") {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		// Leading padding is plain ASCII space, one column each.
		startCol := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		endCol := ansi.StringWidth(trimmed)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// A wide rune straddling startCol is dropped from the prefix; pad to
		// keep the overlay in its column.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		line := prefix + ansi.Cut(overlayLine, startCol, endCol)
		if endCol < width {
			want := width - endCol
			suffix := ansi.Cut(baseLine, endCol, width)
			switch w := ansi.StringWidth(suffix); {
			case w > want:
				// A wide rune straddling endCol: replace its visible half.
				suffix = " " + ansi.Cut(suffix, w-want+1, w)
			case w < want:
				line += strings.Repeat(" ", want-w)
			}
			line += suffix
		}

		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}
