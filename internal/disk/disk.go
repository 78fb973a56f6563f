// Package disk answers directory existence and listing queries over an afero
// filesystem.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

var _ rootdir.FileSystem = (*Oracle)(nil)

// Oracle implements rootdir.FileSystem on top of afero.Fs.
type Oracle struct {
	fs afero.Fs
}

// New returns an Oracle over the given filesystem.
func New(fs afero.Fs) *Oracle {
	return &Oracle{fs: fs}
}

// NewOS returns an Oracle over the host filesystem.
func NewOS() *Oracle {
	return New(afero.NewOsFs())
}

// Exists reports whether path is an existing directory. A regular file at
// path is reported as not existing.
func (o *Oracle) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := o.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %q; %w", path, err)
	}

	return info.IsDir(), nil
}

// ListSubdirectories returns the immediate subdirectories of path, sorted.
// Each child is path with its trailing separators removed, one separator and
// the entry name; the parent is not cleaned, so children keep the caller's
// spelling. Files and symlinks to files are skipped.
func (o *Oracle) ListSubdirectories(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(o.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q; %w", path, err)
	}

	parent := strings.TrimRight(path, `/\`)
	subdirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		child := parent + string(filepath.Separator) + entry.Name()
		if !entry.IsDir() {
			if entry.Mode()&fs.ModeSymlink == 0 {
				continue
			}
			// follow the link to decide
			info, err := o.fs.Stat(child)
			if err != nil || !info.IsDir() {
				continue
			}
		}
		subdirs = append(subdirs, child)
	}
	sort.Strings(subdirs)

	return subdirs, nil
}
