// Package store provides the SQLite-backed record store for root directories
// and tracked content paths.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

var (
	_ rootdir.Store           = (*SQLiteStore)(nil)
	_ rootdir.KnownPathSource = (*SQLiteStore)(nil)
)

// SQLiteStore persists root directories and tracked paths in SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates a new SQLiteStore with the given database path, creating the
// parent directory and applying migrations as needed.
func Open(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory; %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database; %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode; %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout; %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations; %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// All returns every root directory ordered by ID.
func (s *SQLiteStore) All(ctx context.Context) ([]rootdir.RootDir, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, path FROM root_dirs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query root directories; %w", err)
	}
	defer rows.Close()

	dirs := []rootdir.RootDir{}
	for rows.Next() {
		var d rootdir.RootDir
		if err := rows.Scan(&d.ID, &d.Path); err != nil {
			return nil, fmt.Errorf("failed to scan root directory; %w", err)
		}
		dirs = append(dirs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating root directories; %w", err)
	}

	return dirs, nil
}

// Insert adds a root directory and returns it with the assigned ID.
func (s *SQLiteStore) Insert(ctx context.Context, dir rootdir.RootDir) (rootdir.RootDir, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO root_dirs (path, created_at, updated_at)
		 VALUES (?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		dir.Path,
	)
	if err != nil {
		return rootdir.RootDir{}, fmt.Errorf("failed to insert root directory; %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return rootdir.RootDir{}, fmt.Errorf("failed to get inserted id; %w", err)
	}

	return rootdir.RootDir{ID: id, Path: dir.Path}, nil
}

// Update replaces the path of an existing root directory.
func (s *SQLiteStore) Update(ctx context.Context, dir rootdir.RootDir) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE root_dirs SET path = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		dir.Path, dir.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update root directory; %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected; %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w; id %d", rootdir.ErrNotFound, dir.ID)
	}

	return nil
}

// Delete removes a root directory by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM root_dirs WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete root directory; %w", err)
	}
	return nil
}

// TrackPath records a content folder as already mapped. Paths are keyed by
// rootdir.PathKey, so tracking another spelling of a tracked folder is a no-op.
func (s *SQLiteStore) TrackPath(ctx context.Context, path string) error {
	if err := rootdir.ValidatePath(path); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tracked_paths (path_key, path, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(path_key) DO NOTHING`,
		rootdir.PathKey(path), path,
	)
	if err != nil {
		return fmt.Errorf("failed to track path; %w", err)
	}
	return nil
}

// UntrackPath removes a tracked content folder matched by rootdir.PathKey.
// Reports whether a row was removed.
func (s *SQLiteStore) UntrackPath(ctx context.Context, path string) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tracked_paths WHERE path_key = ?", rootdir.PathKey(path))
	if err != nil {
		return false, fmt.Errorf("failed to untrack path; %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected; %w", err)
	}
	return rows > 0, nil
}

// TrackedPaths returns every tracked content folder ordered by path.
func (s *SQLiteStore) TrackedPaths(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM tracked_paths ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracked paths; %w", err)
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan tracked path; %w", err)
		}
		paths = append(paths, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracked paths; %w", err)
	}

	return paths, nil
}

// KnownPaths returns the tracked content folders.
func (s *SQLiteStore) KnownPaths(ctx context.Context) ([]string, error) {
	return s.TrackedPaths(ctx)
}
