package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const dir = "sql"

func setup() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

func Up(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func Down(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	if err := goose.Down(db, dir); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

func Status(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.Status(db, dir)
}
