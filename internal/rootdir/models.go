// Package rootdir manages the root directories a media library scans and
// reconciles them against the filesystem to find folders not yet mapped.
package rootdir

import "context"

// RootDir is a top-level location that is scanned for content.
type RootDir struct {
	// ID is assigned by the Store on insert. Zero means not yet stored.
	ID int64 `json:"id" yaml:"id"`

	// Path is the directory location. Duplicates across records are allowed.
	Path string `json:"path" yaml:"path"`
}

// Store persists RootDir records keyed by ID.
type Store interface {
	// All returns every record in insertion order.
	All(ctx context.Context) ([]RootDir, error)

	// Insert stores a new record and returns it with its assigned ID.
	// Any ID on the input is ignored.
	Insert(ctx context.Context, dir RootDir) (RootDir, error)

	// Update replaces the path of the record with dir.ID.
	// Returns ErrNotFound when no such record exists.
	Update(ctx context.Context, dir RootDir) error

	// Delete removes the record with the given ID. Missing IDs are not an error.
	Delete(ctx context.Context, id int64) error
}

// FileSystem answers existence and listing queries against disk.
type FileSystem interface {
	// Exists reports whether path is an existing directory.
	Exists(ctx context.Context, path string) (bool, error)

	// ListSubdirectories returns the full paths of the immediate
	// subdirectories of path.
	ListSubdirectories(ctx context.Context, path string) ([]string, error)
}

// KnownPathSource supplies paths that are already accounted for, beyond the
// stored root directories.
type KnownPathSource interface {
	KnownPaths(ctx context.Context) ([]string, error)
}

// StaticPaths is a fixed KnownPathSource.
type StaticPaths []string

// KnownPaths returns the static list.
func (s StaticPaths) KnownPaths(ctx context.Context) ([]string, error) {
	return s, nil
}
