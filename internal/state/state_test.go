package state

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func TestGetSelection_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sel, err := getSelection(db)
	if err != nil {
		t.Fatalf("getSelection failed: %v", err)
	}
	if sel != nil {
		t.Errorf("expected nil selection on empty db, got %+v", sel)
	}
}

func TestSaveAndGetSelection(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	want := MenuSelection{PlaylistPath: "/music/jazz", Index: 4, TrackPath: "/music/jazz/05.flac"}
	if err := saveSelection(db, want); err != nil {
		t.Fatalf("saveSelection failed: %v", err)
	}

	got, err := getSelection(db)
	if err != nil {
		t.Fatalf("getSelection failed: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("getSelection = %+v, want %+v", got, want)
	}
}

func TestSaveSelection_Update(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_ = saveSelection(db, MenuSelection{PlaylistPath: "/a", Index: 1})
	_ = saveSelection(db, MenuSelection{PlaylistPath: "/b", Index: 2})

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu_selection`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}

	got, _ := getSelection(db)
	if got.PlaylistPath != "/b" || got.Index != 2 || got.TrackPath != "" {
		t.Errorf("getSelection = %+v", got)
	}
}

func TestManager_CloseFlushesDebouncedSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "ripple.db")

	m, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	m.SaveSelection(MenuSelection{PlaylistPath: "/music", Index: 1})
	m.SaveSelection(MenuSelection{PlaylistPath: "/music", Index: 7})
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = OpenPath(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	sel, err := m.GetSelection()
	if err != nil {
		t.Fatal(err)
	}
	if sel == nil || sel.Index != 7 {
		t.Errorf("GetSelection = %+v, want the last debounced value", sel)
	}
}

func TestManager_CloseWaitsForDebouncedSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ripple.db")

	for i := range 20 {
		m, err := OpenPath(path)
		if err != nil {
			t.Fatalf("OpenPath failed: %v", err)
		}
		m.debounce = 0
		m.SaveSelection(MenuSelection{PlaylistPath: "/music", Index: i})
		if i%2 == 0 {
			time.Sleep(time.Millisecond)
		}
		if err := m.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		m, err = OpenPath(path)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		sel, err := m.GetSelection()
		m.Close()
		if err != nil {
			t.Fatal(err)
		}
		if sel == nil || sel.Index != i {
			t.Fatalf("round %d: GetSelection = %+v, want index %d", i, sel, i)
		}
	}
}

func TestManager_SaveSelectionAfterCloseIsDropped(t *testing.T) {
	m, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m.SaveSelection(MenuSelection{PlaylistPath: "/music", Index: 3})

	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.pending != nil || m.saveTimer != nil {
		t.Error("SaveSelection after Close should not schedule a write")
	}
}

func TestManager_RecordShare(t *testing.T) {
	m, err := OpenPath(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	target, err := m.LastShareTarget()
	if err != nil || target != "" {
		t.Fatalf("LastShareTarget on empty db = %q, %v", target, err)
	}

	ctx := context.Background()
	if err := m.RecordShare(ctx, "twitter", "https://example.org/a.mp3"); err != nil {
		t.Fatal(err)
	}
	if err := m.RecordShare(ctx, "link", "https://example.org/b.mp3"); err != nil {
		t.Fatal(err)
	}

	target, _ = m.LastShareTarget()
	if target != "link" {
		t.Errorf("LastShareTarget = %q, want link", target)
	}

	records, err := m.RecentShares(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("RecentShares = %d records, want 2", len(records))
	}
	if records[0].Target != "link" || records[1].Target != "twitter" {
		t.Errorf("RecentShares order = %s, %s", records[0].Target, records[1].Target)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	boom := errors.New("boom")
	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO share_history (target, url, shared_at) VALUES ('email', 'x', 0)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("withTx error = %v, want boom", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM share_history`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", count)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.SaveSelection(MenuSelection{Index: 3})
	sel, _ := m.GetSelection()
	if sel.Index != 3 || len(m.SavedSelections()) != 1 {
		t.Errorf("mock selection = %+v", sel)
	}

	m.SetShareError(errors.New("disk full"))
	if err := m.RecordShare(context.Background(), "email", "x"); err == nil {
		t.Error("expected configured share error")
	}
	_ = m.Close()
	if !m.IsClosed() {
		t.Error("expected closed")
	}
}
