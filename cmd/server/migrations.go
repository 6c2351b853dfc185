package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fitfoodie/fitfoodie-api/migrations"
	"github.com/pressly/goose/v3"
)

// runMigrations applies any pending schema migrations from the embedded
// migration files. Goose records applied versions in its own table, so
// this is a no-op on an up-to-date database.
func runMigrations(db *sql.DB, log *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	before, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	after, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	if after != before {
		log.Info("applied schema migrations",
			"from_version", before,
			"to_version", after)
	} else {
		log.Debug("schema up to date", "version", after)
	}

	return nil
}
