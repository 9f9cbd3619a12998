// Package notify sends desktop notifications via D-Bus.
package notify

import (
	"os"
	"path/filepath"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// DefaultTimeout lets the notification server choose how long to show a notification.
const DefaultTimeout int32 = -1

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
}

// Discard is a Notifier that sends nothing.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(Notification) (uint32, error) {
	return 0, nil
}

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// CoverArt returns the album art next to a track, or "" if there is none.
func CoverArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Shared builds the notification shown after a track was shared. It replaces
// the previous share notification when replaces is non-zero.
func Shared(trackPath, trackLabel, via string, replaces uint32) Notification {
	icon := CoverArt(trackPath)
	if icon == "" {
		icon = "emblem-shared"
	}
	return Notification{
		Title:      "Shared via " + via,
		Body:       trackLabel,
		Icon:       icon,
		Timeout:    DefaultTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
