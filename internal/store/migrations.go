package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

// Migration represents a database schema migration.
type Migration struct {
	Version     int
	Description string
	Up          string

	// Backfill runs after Up in the same transaction, for data changes that
	// need Go code.
	Backfill func(ctx context.Context, tx *sql.Tx) error
}

// migrations contains all schema migrations in order.
var migrations = []Migration{
	{
		Version:     1,
		Description: "Create root_dirs table",
		Up: `
			CREATE TABLE IF NOT EXISTS root_dirs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				path TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		Version:     2,
		Description: "Create tracked_paths table",
		Up: `
			CREATE TABLE IF NOT EXISTS tracked_paths (
				path TEXT PRIMARY KEY COLLATE NOCASE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		Version:     3,
		Description: "Key tracked_paths by normalized path",
		Up: `
			ALTER TABLE tracked_paths RENAME TO tracked_paths_v2;
			CREATE TABLE tracked_paths (
				path_key TEXT PRIMARY KEY,
				path TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
		Backfill: backfillTrackedPathKeys,
	},
}

// backfillTrackedPathKeys copies tracked paths from the v2 table, keeping the
// first-inserted spelling of each key.
func backfillTrackedPathKeys(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx, `SELECT path FROM tracked_paths_v2 ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("failed to read tracked paths; %w", err)
	}

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan tracked path; %w", err)
		}
		paths = append(paths, p)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("error iterating tracked paths; %w", err)
	}

	for _, p := range paths {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tracked_paths (path_key, path, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(path_key) DO NOTHING`,
			rootdir.PathKey(p), p,
		); err != nil {
			return fmt.Errorf("failed to copy tracked path %q; %w", p, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DROP TABLE tracked_paths_v2`); err != nil {
		return fmt.Errorf("failed to drop old tracked paths table; %w", err)
	}
	return nil
}

// Migrate runs all pending migrations on the database.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table; %w", err)
	}

	currentVersion, err := SchemaVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version; %w", err)
	}

	for _, m := range migrations {
		if m.Version <= currentVersion {
			continue
		}

		if err := runMigration(ctx, db, m); err != nil {
			return fmt.Errorf("failed to run migration %d (%s); %w", m.Version, m.Description, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration version.
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// runMigration executes a single migration within a transaction.
func runMigration(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction; %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		return fmt.Errorf("failed to execute migration; %w", err)
	}

	if m.Backfill != nil {
		if err := m.Backfill(ctx, tx); err != nil {
			return fmt.Errorf("failed to backfill migration; %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("failed to record migration; %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction; %w", err)
	}

	return nil
}
