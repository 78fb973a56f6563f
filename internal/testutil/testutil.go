// Package testutil provides isolated environments for command tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leefowlercu/rootdirs/internal/config"
	"github.com/leefowlercu/rootdirs/internal/rootdir"
	"github.com/leefowlercu/rootdirs/internal/store"
)

// TestEnv is an isolated config directory and registry database.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
}

// NewTestEnv points configuration at a fresh temp directory through
// environment overrides and reinitializes config. Cleanup is automatic.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	root := t.TempDir()
	configDir := filepath.Join(root, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create test config dir: %v", err)
	}

	t.Setenv("HOME", root)
	t.Setenv("ROOTDIRS_CONFIG_DIR", configDir)
	t.Setenv("ROOTDIRS_DATABASE_REGISTRY_PATH", filepath.Join(configDir, "registry.db"))
	t.Setenv("ROOTDIRS_LOG_FILE", filepath.Join(configDir, "rootdirs.log"))

	config.Reset()
	if err := config.Init(); err != nil {
		t.Fatalf("failed to initialize test config: %v", err)
	}

	t.Cleanup(config.Reset)

	return &TestEnv{t: t, ConfigDir: configDir}
}

// RegistryPath returns the path of the test registry database.
func (e *TestEnv) RegistryPath() string {
	return filepath.Join(e.ConfigDir, "registry.db")
}

// OpenStore opens the test registry database; it is closed on cleanup.
func (e *TestEnv) OpenStore() *store.SQLiteStore {
	e.t.Helper()

	s, err := store.Open(context.Background(), e.RegistryPath())
	if err != nil {
		e.t.Fatalf("failed to open test store: %v", err)
	}
	e.t.Cleanup(func() { s.Close() })
	return s
}

// SeedRootDirs inserts root directories directly into the test store and
// returns them with their assigned IDs.
func (e *TestEnv) SeedRootDirs(paths ...string) []rootdir.RootDir {
	e.t.Helper()

	s := e.OpenStore()
	dirs := make([]rootdir.RootDir, 0, len(paths))
	for _, p := range paths {
		d, err := s.Insert(context.Background(), rootdir.RootDir{Path: p})
		if err != nil {
			e.t.Fatalf("failed to seed root directory %s: %v", p, err)
		}
		dirs = append(dirs, d)
	}
	return dirs
}

// CreateTestDir creates a directory outside the config dir and returns its
// absolute path.
func (e *TestEnv) CreateTestDir(name string) string {
	e.t.Helper()

	dir := filepath.Join(e.t.TempDir(), "testdata", name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("failed to create test dir %s: %v", name, err)
	}
	return dir
}

// WriteConfigFile writes config.yaml into the config dir without reloading it.
func (e *TestEnv) WriteConfigFile(content string) {
	e.t.Helper()

	if err := os.WriteFile(filepath.Join(e.ConfigDir, "config.yaml"), []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// WriteConfig writes config.yaml into the config dir and reinitializes config.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()

	e.WriteConfigFile(content)

	config.Reset()
	if err := config.Init(); err != nil {
		e.t.Fatalf("failed to reinitialize config: %v", err)
	}
}
