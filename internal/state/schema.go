package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS menu_selection (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			playlist_path TEXT NOT NULL,
			selected_index INTEGER NOT NULL DEFAULT 0,
			track_path TEXT
		);

		CREATE TABLE IF NOT EXISTS share_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_target TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS share_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			target TEXT NOT NULL,
			url TEXT NOT NULL,
			shared_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_share_history_shared_at ON share_history(shared_at DESC);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
