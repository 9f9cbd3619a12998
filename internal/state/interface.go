package state

import "context"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveSelection(sel MenuSelection)
	GetSelection() (*MenuSelection, error)
	RecordShare(ctx context.Context, target, url string) error
	LastShareTarget() (string, error)
	RecentShares(limit int) ([]ShareRecord, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
