// Package testdb provides database helpers for integration tests. Tests
// that need a real PostgreSQL instance call New, which skips unless
// DATABASE_URL points at a test database.
package testdb

import (
	"database/sql"
	"os"
	"testing"

	"github.com/fitfoodie/fitfoodie-api/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
	"github.com/pressly/goose/v3"
)

// envDatabaseURL names the environment variable carrying the test
// database connection string.
const envDatabaseURL = "DATABASE_URL"

// New opens a connection to the test database and brings its schema up to
// date. The test is skipped if DATABASE_URL is unset, and the connection
// is closed automatically when the test finishes.
func New(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(envDatabaseURL)
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := db.Ping(); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// Reset truncates every application table so a test starts from a clean
// slate.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{"meal_favorites", "influencer_follows", "meals", "influencers", "users"}
	for _, table := range tables {
		if _, err := db.Exec("TRUNCATE TABLE " + table + " CASCADE"); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
