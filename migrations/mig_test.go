package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.sqlite"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if err := Up(ctx, db); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := Up(ctx, db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	v, err := Version(ctx, db)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != 3 {
		t.Fatalf("expected version 3, got %d", v)
	}
}

func TestUpCreatesTables(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if err := Up(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"netflix_shows", "audit_events", "api_keys"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}
