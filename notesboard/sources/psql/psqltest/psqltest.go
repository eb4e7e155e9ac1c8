// Package psqltest opens throwaway in-memory databases carrying the notes
// schema, for tests that need a real store.
package psqltest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"

	"notesboard/notesboard/sources/psql"
)

// OpenSQLite returns a migrated in-memory SQLite database that is closed when
// the test ends. Each call gets its own database.
func OpenSQLite(t testing.TB) *psql.Database {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := psql.Open(context.Background(), sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(db.Close)
	return db
}
