package state

import (
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/ripple/internal/errmsg"
)

const (
	appName      = "ripple"
	dbFileName   = "ripple.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *MenuSelection
	closed    bool
	saving    sync.WaitGroup // debounced saves past the closed check
	debounce  time.Duration
	log       *slog.Logger
}

// Open opens the state database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (creating if needed) the state database at dbPath.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{
		db:       db,
		debounce: saveDebounce,
		log:      slog.New(slog.DiscardHandler),
	}, nil
}

// SetLogger sets where failed background saves are reported.
func (m *Manager) SetLogger(l *slog.Logger) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.log = l
}

// Close flushes the pending selection and closes the database. It waits for
// a debounced save that already started; selections saved afterwards are
// dropped.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	m.saving.Wait()

	// Flush pending state
	var flushErr error
	if pending != nil {
		flushErr = saveSelection(m.db, *pending)
	}

	return errors.Join(flushErr, m.db.Close())
}

func (m *Manager) GetSelection() (*MenuSelection, error) {
	return getSelection(m.db)
}

// SaveSelection records the menu selection. Writes are debounced so quick
// navigation through the menu produces a single database write.
func (m *Manager) SaveSelection(sel MenuSelection) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.closed {
		return
	}
	m.pending = &sel

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		if m.closed {
			m.saveMu.Unlock()
			return
		}
		pending := m.pending
		m.pending = nil
		log := m.log
		m.saving.Add(1)
		m.saveMu.Unlock()
		defer m.saving.Done()

		if pending != nil {
			if err := saveSelection(m.db, *pending); err != nil {
				log.Error(errmsg.Format(errmsg.OpStateSave, err))
			}
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
