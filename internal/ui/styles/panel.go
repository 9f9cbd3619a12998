package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Panel classes with their own frame.
const (
	ClassSettings = "settings-panel" // thick border
	ClassShare    = "share-panel"    // accent border color while idle
)

// PanelStyle returns the bordered frame for an overlay panel with the given
// classes. Hovered panels get the hover border so the user can see auto-hide
// is paused.
func PanelStyle(hovered bool, classes []string) lipgloss.Style {
	border := lipgloss.RoundedBorder()
	if slices.Contains(classes, ClassSettings) {
		border = lipgloss.ThickBorder()
	}

	color := T().Border
	switch {
	case hovered:
		color = T().BorderHover
	case slices.Contains(classes, ClassShare):
		color = T().Secondary
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Padding(0, 1)
}

// PanelTitle renders a panel heading with the theme gradient.
func PanelTitle(title string) string {
	return ApplyBoldGradient(title, T().Primary, T().Secondary)
}
