// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpPlaylistLoad   Op = "load playlist"
	OpPlaylistSelect Op = "select track"

	// Share operations
	OpShareLink  Op = "build share link"
	OpShareCopy  Op = "copy link to clipboard"
	OpShareOpen  Op = "open share target"
	OpShareStore Op = "remember share target"

	// Panel operations
	OpPanelCreate Op = "create panel"

	// State operations
	OpStateOpen Op = "open state database"
	OpStateSave Op = "save menu selection"
	OpStateLoad Op = "restore menu selection"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
