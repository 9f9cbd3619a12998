package state

import (
	"database/sql"
	"errors"
)

// MenuSelection is the playlist menu position restored at startup.
type MenuSelection struct {
	PlaylistPath string // folder the playlist was loaded from
	Index        int
	TrackPath    string // lets a reordered playlist find the track again
}

func getSelection(db *sql.DB) (*MenuSelection, error) {
	row := db.QueryRow(`
		SELECT playlist_path, selected_index, track_path
		FROM menu_selection WHERE id = 1
	`)

	var sel MenuSelection
	var trackPath sql.NullString
	err := row.Scan(&sel.PlaylistPath, &sel.Index, &trackPath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	sel.TrackPath = nullStringValue(trackPath)

	return &sel, nil
}

func saveSelection(db *sql.DB, sel MenuSelection) error {
	_, err := db.Exec(`
		INSERT INTO menu_selection (id, playlist_path, selected_index, track_path)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			playlist_path = excluded.playlist_path,
			selected_index = excluded.selected_index,
			track_path = excluded.track_path
	`, sel.PlaylistPath, sel.Index, sel.TrackPath)
	return err
}

func nullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}
