// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Panel toggles
	ActionTogglePlaylistMenu Action = "toggle_playlist_menu"
	ActionToggleSharePanel   Action = "toggle_share_panel"
	ActionHidePanels         Action = "hide_panels"

	// Track actions
	ActionNextTrack Action = "next_track"
	ActionPrevTrack Action = "prev_track"
)
