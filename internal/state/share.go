package state

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ShareRecord is one entry of the share history.
type ShareRecord struct {
	Target   string
	URL      string
	SharedAt time.Time
}

// RecordShare appends to the share history and remembers target as the
// focused button for the next time the share panel opens.
func (m *Manager) RecordShare(ctx context.Context, target, url string) error {
	now := time.Now().Unix()
	return withTx(ctx, m.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO share_history (target, url, shared_at) VALUES (?, ?, ?)
		`, target, url, now); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO share_state (id, last_target) VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET last_target = excluded.last_target
		`, target)
		return err
	})
}

// LastShareTarget returns the most recently used share target, or "" if
// nothing was shared yet.
func (m *Manager) LastShareTarget() (string, error) {
	var target string
	err := m.db.QueryRow(`SELECT last_target FROM share_state WHERE id = 1`).Scan(&target)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return target, err
}

// RecentShares returns up to limit history entries, newest first.
func (m *Manager) RecentShares(limit int) ([]ShareRecord, error) {
	rows, err := m.db.Query(`
		SELECT target, url, shared_at FROM share_history
		ORDER BY shared_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ShareRecord
	for rows.Next() {
		var r ShareRecord
		var at int64
		if err := rows.Scan(&r.Target, &r.URL, &at); err != nil {
			return nil, err
		}
		r.SharedAt = time.Unix(at, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}

// withTx runs fn in a transaction, rolling back when fn fails.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
