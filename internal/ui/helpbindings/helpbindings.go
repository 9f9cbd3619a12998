// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/popup"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"track",
	"playlistmenu",
	"sharepanel",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":       "Global",
	"track":        "Track",
	"playlistmenu": "Playlist Menu",
	"sharepanel":   "Share Panel",
}

// entry is one help line.
type entry struct {
	context string
	keys    string
	desc    string
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	entries      []entry
	contexts     []string
	components   map[string][]key.Binding
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{components: map[string][]key.Binding{}}
}

// AddComponent registers the bindings a component handles itself, shown
// under context when it is selected by SetContexts.
func (m *Model) AddComponent(context string, bindings []key.Binding) {
	m.components[context] = bindings
	m.SetContexts(m.contexts)
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.entries = nil
	for _, ctx := range categoryOrder {
		if !slices.Contains(contexts, ctx) {
			continue
		}
		for _, b := range keymap.ByContext(ctx) {
			m.entries = append(m.entries, entry{ctx, strings.Join(b.Keys, ", "), b.Description})
		}
		for _, b := range m.components[ctx] {
			h := b.Help()
			m.entries = append(m.entries, entry{ctx, h.Key, h.Desc})
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		maxScroll := m.maxScroll()
		if m.scrollOffset < maxScroll {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup. The popup is bordered and centered on the
// screen it was sized for.
func (m *Model) View() string {
	content := m.render()
	if content == "" {
		return ""
	}
	return popup.RenderBordered(content, m.Width(), m.Height())
}

// render renders the help popup content without its border.
func (m *Model) render() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	content := m.buildContent()
	lines := strings.Split(content, "\n")

	// Calculate max width from ALL lines (not just visible) for consistent popup width
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	// Apply scroll offset
	startLine := min(m.scrollOffset, len(lines))
	endLine := min(startLine+m.visibleHeight(), len(lines))

	visibleLines := lines[startLine:endLine]

	// Pad visible lines to max width for consistent popup sizing
	for i, line := range visibleLines {
		if w := lipgloss.Width(line); w < maxWidth {
			visibleLines[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	s := styles.T().S()

	var result strings.Builder
	result.WriteString(styles.PanelTitle("Help"))
	result.WriteString("\n\n")
	result.WriteString(strings.Join(visibleLines, "\n"))
	result.WriteString("\n\n")
	result.WriteString(s.Subtle.Render(m.buildFooter()))

	return result.String()
}

func (m Model) buildContent() string {
	var sb strings.Builder

	s := styles.T().S()
	keyStyle := s.Playing
	descStyle := s.Base
	headerStyle := s.Title
	separatorStyle := s.Subtle

	// Find max key width for alignment
	maxKeyWidth := 0
	for _, e := range m.entries {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(e.keys))
	}

	currentContext := ""
	for _, e := range m.entries {
		// Add category header when context changes
		if e.context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[e.context]
			if label == "" {
				label = e.context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = e.context
		}

		paddedKey := e.keys + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(e.keys))
		sb.WriteString(keyStyle.Render(paddedKey))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(e.desc))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Leave room for popup chrome (title, footer, borders, padding)
	return max(m.Height()-12, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	total := m.totalLines()
	visible := m.visibleHeight()
	if total <= visible {
		return 0
	}
	return total - visible
}
