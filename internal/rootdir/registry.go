package rootdir

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// Registry provides CRUD over root directories and computes unmapped folders.
// It keeps no state between calls; the Store owns every record.
type Registry struct {
	store  Store
	fs     FileSystem
	known  []KnownPathSource
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for the Registry.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithKnownPaths adds sources of already-mapped paths that are excluded from
// GetUnmappedFolders in addition to the stored root directories.
func WithKnownPaths(sources ...KnownPathSource) Option {
	return func(r *Registry) {
		for _, s := range sources {
			if s != nil {
				r.known = append(r.known, s)
			}
		}
	}
}

// New creates a Registry over the given store and filesystem.
func New(store Store, fs FileSystem, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		fs:     fs,
		logger: slog.Default().With("component", "rootdir-registry"),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// GetAll returns every root directory in store order.
func (r *Registry) GetAll(ctx context.Context) ([]RootDir, error) {
	dirs, err := r.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list root directories; %w", err)
	}
	if dirs == nil {
		dirs = []RootDir{}
	}
	return dirs, nil
}

// GetRootDir returns the root directory with the given ID.
// Returns ErrNotFound if there is none.
func (r *Registry) GetRootDir(ctx context.Context, id int64) (RootDir, error) {
	dirs, err := r.store.All(ctx)
	if err != nil {
		return RootDir{}, fmt.Errorf("failed to list root directories; %w", err)
	}

	for _, d := range dirs {
		if d.ID == id {
			return d, nil
		}
	}

	return RootDir{}, fmt.Errorf("%w; id %d", ErrNotFound, id)
}

// Add validates dir.Path and stores a new root directory. The returned value
// carries the ID assigned by the store; any ID on dir is ignored.
func (r *Registry) Add(ctx context.Context, dir RootDir) (RootDir, error) {
	if err := ValidatePath(dir.Path); err != nil {
		return RootDir{}, err
	}

	dir.ID = 0
	stored, err := r.store.Insert(ctx, dir)
	if err != nil {
		return RootDir{}, fmt.Errorf("failed to add root directory; %w", err)
	}

	r.logger.Info("root directory added", "id", stored.ID, "path", stored.Path)
	return stored, nil
}

// Update validates dir.Path and replaces the path of the record with dir.ID.
// Returns ErrNotFound if the record does not exist; nothing is inserted.
func (r *Registry) Update(ctx context.Context, dir RootDir) error {
	if err := ValidatePath(dir.Path); err != nil {
		return err
	}

	if err := r.store.Update(ctx, dir); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update root directory %d; %w", dir.ID, err)
	}

	r.logger.Info("root directory updated", "id", dir.ID, "path", dir.Path)
	return nil
}

// Remove deletes the root directory with the given ID. Removing an ID that
// does not exist succeeds.
func (r *Registry) Remove(ctx context.Context, id int64) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove root directory %d; %w", id, err)
	}

	r.logger.Info("root directory removed", "id", id)
	return nil
}

// GetUnmappedFolders lists the immediate subdirectories of path that are not
// a stored root directory or a path from any configured KnownPathSource.
// A path that does not exist yields an empty result. Matching ignores case
// and trailing separators; the result is sorted.
func (r *Registry) GetUnmappedFolders(ctx context.Context, path string) ([]string, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	exists, err := r.fs.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check folder %q; %w", path, err)
	}
	if !exists {
		r.logger.Debug("folder does not exist; nothing unmapped", "path", path)
		return []string{}, nil
	}

	subdirs, err := r.fs.ListSubdirectories(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %q; %w", path, err)
	}

	known, err := r.knownKeys(ctx)
	if err != nil {
		return nil, err
	}

	unmapped := make([]string, 0, len(subdirs))
	for _, sub := range subdirs {
		key := PathKey(sub)
		if _, ok := known[key]; ok {
			continue
		}
		// also guards against the listing repeating a folder
		known[key] = struct{}{}
		unmapped = append(unmapped, sub)
	}
	sort.Strings(unmapped)

	r.logger.Debug("unmapped folders computed",
		"path", path,
		"subdirectories", len(subdirs),
		"unmapped", len(unmapped))

	return unmapped, nil
}

// knownKeys collects the comparison keys of every path already accounted for.
func (r *Registry) knownKeys(ctx context.Context) (map[string]struct{}, error) {
	dirs, err := r.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list root directories; %w", err)
	}

	keys := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		keys[PathKey(d.Path)] = struct{}{}
	}

	for _, src := range r.known {
		paths, err := src.KnownPaths(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load known paths; %w", err)
		}
		for _, p := range paths {
			keys[PathKey(p)] = struct{}{}
		}
	}

	return keys, nil
}
