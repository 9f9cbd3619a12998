package state

import (
	"context"
	"slices"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	selection  *MenuSelection
	saved      []MenuSelection
	shares     []ShareRecord
	shareErr   error
	lastTarget string
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveSelection(sel MenuSelection) {
	m.saved = append(m.saved, sel)
	m.selection = &sel
}

func (m *Mock) GetSelection() (*MenuSelection, error) {
	return m.selection, nil
}

func (m *Mock) RecordShare(_ context.Context, target, url string) error {
	if m.shareErr != nil {
		return m.shareErr
	}
	m.shares = append(m.shares, ShareRecord{Target: target, URL: url, SharedAt: time.Now()})
	m.lastTarget = target
	return nil
}

func (m *Mock) LastShareTarget() (string, error) {
	return m.lastTarget, nil
}

func (m *Mock) RecentShares(limit int) ([]ShareRecord, error) {
	out := slices.Clone(m.shares)
	slices.Reverse(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSelection(sel *MenuSelection) { m.selection = sel }

func (m *Mock) SetLastShareTarget(target string) { m.lastTarget = target }

func (m *Mock) SetShareError(err error) { m.shareErr = err }

func (m *Mock) SavedSelections() []MenuSelection { return m.saved }

func (m *Mock) Shares() []ShareRecord { return m.shares }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
