package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "track"
}

// Bindings contains the application-level key bindings. Keys handled inside
// the playlist menu and share panel are defined by those components.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionTogglePlaylistMenu, []string{"p"}, "Toggle playlist menu", "global"},
	{ActionToggleSharePanel, []string{"S"}, "Toggle share panel", "global"},
	{ActionHidePanels, []string{"esc"}, "Hide panels", "global"},

	// Track
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "track"},
	{ActionPrevTrack, []string{"N", "pgup"}, "Previous track", "track"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
