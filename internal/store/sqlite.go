package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/64robkash/website-manager/internal/model"
)

// SQLiteStore implements the Store interface against a local SQLite
// database, one table per collection. Checklists are embedded in the
// task document as JSON.
type SQLiteStore struct {
	db    *sqlx.DB
	watch *watcher
	log   zerolog.Logger
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
//
// If watchInterval is positive, a background poller detects writes made
// by other connections and pushes fresh snapshots to subscribers. A
// zero or negative interval disables external-change polling; local
// mutations still notify subscribers inline.
func NewSQLiteStore(dbPath string, watchInterval time.Duration, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, log: logger}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s.watch = newWatcher(s, watchInterval, logger)
	s.watch.start()

	return s, nil
}

// Close stops the change watcher and closes the database connection.
func (s *SQLiteStore) Close() error {
	s.watch.stop()
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// storeTime normalizes a timestamp for storage: UTC, second granularity.
func storeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// marshalChecklist serializes a checklist for the task document.
// A nil checklist is stored as an empty list.
func marshalChecklist(items []model.ChecklistItem) (string, error) {
	if items == nil {
		items = []model.ChecklistItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshaling checklist: %w", err)
	}
	return string(data), nil
}

// unmarshalChecklist deserializes a stored checklist column.
func unmarshalChecklist(data string) ([]model.ChecklistItem, error) {
	if data == "" {
		return nil, nil
	}
	var items []model.ChecklistItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("unmarshaling checklist: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
