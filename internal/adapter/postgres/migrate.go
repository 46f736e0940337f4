package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate runs a goose command ("up", "down", "status", ...) against db
// using the embedded migrations.
func Migrate(db *sql.DB, command string) error {
	dir, err := os.MkdirTemp("", "webike-migrations")
	if err != nil {
		return fmt.Errorf("prepare migrations: %w", err)
	}
	defer os.RemoveAll(dir)

	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	for _, entry := range entries {
		data, err := migrationFiles.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dir, entry.Name()), data, 0o600); err != nil {
			return fmt.Errorf("write migration %s: %w", entry.Name(), err)
		}
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Run(command, db, dir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Open connects to PostgreSQL and checks the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
