package panel

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// DefaultHideDelay is the idle time in milliseconds before a panel hides itself.
	DefaultHideDelay = 3000

	// HideDelayDisabled turns auto-hiding off.
	HideDelayDisabled = -1
)

// ErrInvalidHideDelay is returned for hide delays below HideDelayDisabled.
var ErrInvalidHideDelay = errors.New("hide delay must be >= 0, or -1 to disable")

// Config describes a panel. Pointer fields distinguish "unset" from zero so
// layers can be merged.
type Config struct {
	Title     string
	Hidden    *bool
	HideDelay *int     // milliseconds; -1 disables auto-hide
	Classes   []string // style tags, accumulated across layers
}

// Merge folds layers left to right. Later layers override earlier ones for
// every field they set; classes are appended without duplicates.
func Merge(layers ...Config) Config {
	var out Config
	for _, l := range layers {
		if l.Title != "" {
			out.Title = l.Title
		}
		if l.Hidden != nil {
			out.Hidden = Ptr(*l.Hidden)
		}
		if l.HideDelay != nil {
			out.HideDelay = Ptr(*l.HideDelay)
		}
		for _, c := range l.Classes {
			if !slices.Contains(out.Classes, c) {
				out.Classes = append(out.Classes, c)
			}
		}
	}
	return out
}

// Validate checks the values a panel cannot work with.
func (c Config) Validate() error {
	if c.HideDelay != nil && *c.HideDelay < HideDelayDisabled {
		return fmt.Errorf("%w: got %d", ErrInvalidHideDelay, *c.HideDelay)
	}
	return nil
}

// HideDelayMs returns the configured delay, or DefaultHideDelay when unset.
func (c Config) HideDelayMs() int {
	if c.HideDelay == nil {
		return DefaultHideDelay
	}
	return *c.HideDelay
}

// StartsHidden reports whether the panel is created hidden. Panels default to visible.
func (c Config) StartsHidden() bool {
	return c.Hidden != nil && *c.Hidden
}

// Ptr returns a pointer to v, for filling optional Config fields.
func Ptr[T any](v T) *T {
	return &v
}
