package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
)

// Migration is one schema change, named after its file.
type Migration struct {
	Version string
	SQL     string
}

// LoadMigrations reads every *.sql file at the root of fsys, ordered by name.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return nil, fmt.Errorf("migration %s is empty", name)
		}
		migrations = append(migrations, Migration{Version: path.Base(name), SQL: string(content)})
	}
	return migrations, nil
}

// Pending drops the migrations whose version is already applied.
func Pending(all []Migration, applied map[string]bool) []Migration {
	var pending []Migration
	for _, m := range all {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	return pending
}

// Migrate applies the pending migrations from fsys, one transaction each, and
// reports how many ran.
func (db *DB) Migrate(ctx context.Context, fsys fs.FS) (int, error) {
	logger := slog.With("component", "migrations", "operation", "migrate")

	all, err := LoadMigrations(fsys)
	if err != nil {
		logger.Error("Failed to load migrations", "error", err)
		return 0, err
	}

	if _, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT NOW()
	)`); err != nil {
		logger.Error("Failed to create migrations table", "error", err)
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.appliedVersions(ctx)
	if err != nil {
		logger.Error("Failed to read applied migrations", "error", err)
		return 0, err
	}

	pending := Pending(all, applied)
	logger.Info("Checked migrations", "total", len(all), "pending", len(pending))

	for _, m := range pending {
		err := db.WithTx(ctx, func(tx *Tx) error {
			if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version)
			return err
		})
		if err != nil {
			logger.Error("Migration failed", "migration", m.Version, "error", err)
			return 0, fmt.Errorf("failed to run migration %s: %w", m.Version, err)
		}
		logger.Info("Migration applied", "migration", m.Version)
	}

	return len(pending), nil
}

func (db *DB) appliedVersions(ctx context.Context) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
