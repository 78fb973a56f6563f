package cmdutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leefowlercu/rootdirs/internal/rootdir"
	"github.com/leefowlercu/rootdirs/internal/testutil"
)

func TestOpenRegistry_LogsWithComponent(t *testing.T) {
	testutil.NewTestEnv(t)

	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(orig) })

	ctx := context.Background()
	reg, s, err := OpenRegistry(ctx)
	if err != nil {
		t.Fatalf("OpenRegistry() error = %v", err)
	}
	defer s.Close()

	if _, err := reg.Add(ctx, rootdir.RootDir{Path: "/srv/media/tv"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	line := buf.String()
	if n := strings.Count(line, "component=rootdir-registry"); n != 1 {
		t.Errorf("expected component attribute once, got %d in: %s", n, line)
	}
}

func TestOpenRegistry_ExcludesIgnoredAndTracked(t *testing.T) {
	env := testutil.NewTestEnv(t)
	base := env.CreateTestDir("library")
	for _, d := range []string{"Movies", "Downloads", "Extras"} {
		if err := os.MkdirAll(filepath.Join(base, d), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
	env.WriteConfig("library:\n  ignored_paths:\n    - " + filepath.Join(base, "Downloads") + "/\n")

	ctx := context.Background()
	reg, s, err := OpenRegistry(ctx)
	if err != nil {
		t.Fatalf("OpenRegistry() error = %v", err)
	}
	defer s.Close()

	if err := s.TrackPath(ctx, strings.ToUpper(filepath.Join(base, "extras"))); err != nil {
		t.Fatalf("TrackPath() error = %v", err)
	}

	unmapped, err := reg.GetUnmappedFolders(ctx, base)
	if err != nil {
		t.Fatalf("GetUnmappedFolders() error = %v", err)
	}
	if len(unmapped) != 1 || unmapped[0] != filepath.Join(base, "Movies") {
		t.Errorf("GetUnmappedFolders() = %v, want only Movies", unmapped)
	}
}
