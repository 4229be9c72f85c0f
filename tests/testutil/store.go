package testutil

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/64robkash/website-manager/internal/store"
)

// NewTestStore creates a SQLiteStore on a per-test temp file with all
// migrations applied and external-change polling disabled, so snapshot
// delivery stays deterministic. The store is closed when the test ends.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.NewSQLiteStore(dbPath, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
