package cmdutil

import (
	"context"
	"fmt"

	"github.com/leefowlercu/rootdirs/internal/config"
	"github.com/leefowlercu/rootdirs/internal/disk"
	"github.com/leefowlercu/rootdirs/internal/rootdir"
	"github.com/leefowlercu/rootdirs/internal/store"
)

// OpenStore opens the record store at the configured registry path.
func OpenStore(ctx context.Context) (*store.SQLiteStore, error) {
	registryPath, err := ResolvePath(config.Get().Database.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve registry path; %w", err)
	}

	s, err := store.Open(ctx, registryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry; %w", err)
	}
	return s, nil
}

// OpenRegistry opens the record store and builds a Registry over it and the
// host filesystem. Tracked paths and configured ignored paths are excluded from
// unmapped folder reports. The caller must close the returned store.
func OpenRegistry(ctx context.Context) (*rootdir.Registry, *store.SQLiteStore, error) {
	s, err := OpenStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	ignored := make(rootdir.StaticPaths, 0, len(config.Get().Library.IgnoredPaths))
	for _, p := range config.Get().Library.IgnoredPaths {
		ignored = append(ignored, config.ExpandPath(p))
	}

	reg := rootdir.New(s, disk.NewOS(), rootdir.WithKnownPaths(s, ignored))
	return reg, s, nil
}
