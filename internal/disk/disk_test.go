package disk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leefowlercu/rootdirs/internal/rootdir"
	"github.com/leefowlercu/rootdirs/internal/store"
)

func newMemOracle(t *testing.T, dirs []string, files []string) *Oracle {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0755))
	}
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0644))
	}
	return New(fs)
}

func TestExists(t *testing.T) {
	o := newMemOracle(t, []string{"/media/tv"}, []string{"/media/readme.txt"})
	ctx := context.Background()

	tests := []struct {
		path string
		want bool
	}{
		{"/media/tv", true},
		{"/media", true},
		{"/media/movies", false},
		{"/media/readme.txt", false},
	}

	for _, tt := range tests {
		got, err := o.Exists(ctx, tt.path)
		if err != nil {
			t.Fatalf("Exists(%q) error = %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestListSubdirectories(t *testing.T) {
	o := newMemOracle(t,
		[]string{"/media/tv/Show B/Season 1", "/media/tv/Show A"},
		[]string{"/media/tv/notes.nfo"})

	subdirs, err := o.ListSubdirectories(context.Background(), "/media/tv")
	require.NoError(t, err)
	assert.Equal(t, []string{"/media/tv/Show A", "/media/tv/Show B"}, subdirs)
}

func TestListSubdirectories_Missing(t *testing.T) {
	o := newMemOracle(t, nil, nil)

	_, err := o.ListSubdirectories(context.Background(), "/nope")
	assert.Error(t, err)
}

func TestOracle_CancelledContext(t *testing.T) {
	o := newMemOracle(t, []string{"/media"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Exists(ctx, "/media")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = o.ListSubdirectories(ctx, "/media")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOracle_SymlinkedDirectory(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "elsewhere")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Real"), 0755))
	if err := os.Symlink(target, filepath.Join(root, "Linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0644))

	subdirs, err := NewOS().ListSubdirectories(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "Linked"), filepath.Join(root, "Real")}, subdirs)
}

func TestOracle_UnmappedFolders(t *testing.T) {
	o := newMemOracle(t, []string{"/media/tv/ShowA", "/media/tv/ShowB", "/media/tv/Mapped"}, nil)
	ctx := context.Background()

	reg := rootdir.New(emptyStore{}, o, rootdir.WithKnownPaths(rootdir.StaticPaths{"/media/tv/mapped/"}))

	unmapped, err := reg.GetUnmappedFolders(ctx, "/media/tv")
	require.NoError(t, err)
	assert.Equal(t, []string{"/media/tv/ShowA", "/media/tv/ShowB"}, unmapped)

	unmapped, err = reg.GetUnmappedFolders(ctx, "/media/movies")
	require.NoError(t, err)
	assert.Empty(t, unmapped)
}

func TestOracle_KeepsParentSpelling(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"Show", "Other"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
	ctx := context.Background()

	// A leading double slash is a UNC shape to the validator but still
	// resolves locally on POSIX hosts.
	parent := "/" + root + "/"

	subdirs, err := NewOS().ListSubdirectories(ctx, parent)
	require.NoError(t, err)
	assert.Equal(t, []string{"/" + root + "/Other", "/" + root + "/Show"}, subdirs)

	s, err := store.Open(ctx, filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	reg := rootdir.New(s, NewOS())
	_, err = reg.Add(ctx, rootdir.RootDir{Path: "/" + root + "//Show"})
	require.NoError(t, err)

	unmapped, err := reg.GetUnmappedFolders(ctx, parent)
	require.NoError(t, err)
	assert.Equal(t, []string{"/" + root + "/Other"}, unmapped)
}

type emptyStore struct{}

func (emptyStore) All(ctx context.Context) ([]rootdir.RootDir, error) { return nil, nil }
func (emptyStore) Insert(ctx context.Context, d rootdir.RootDir) (rootdir.RootDir, error) {
	return d, nil
}
func (emptyStore) Update(ctx context.Context, d rootdir.RootDir) error { return rootdir.ErrNotFound }
func (emptyStore) Delete(ctx context.Context, id int64) error          { return nil }
