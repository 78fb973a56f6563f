package unmapped

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/testutil"
)

// makeLibrary creates a media folder with the given subfolders and one plain file.
func makeLibrary(t *testing.T, env *testutil.TestEnv, subdirs ...string) string {
	t.Helper()

	base := env.CreateTestDir("library")
	for _, d := range subdirs {
		if err := os.MkdirAll(filepath.Join(base, d), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
	if err := os.WriteFile(filepath.Join(base, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	return base
}

func runJSON(t *testing.T, args ...string) []string {
	t.Helper()

	cmd := createTestCommand()
	cmd.SetArgs(append(args, "--output", "json"))

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unmapped command failed: %v", err)
	}

	var folders []string
	if err := json.Unmarshal(stdout.Bytes(), &folders); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}
	return folders
}

func TestUnmappedCmd_ExcludesRootDirs(t *testing.T) {
	env := testutil.NewTestEnv(t)
	base := makeLibrary(t, env, "Movies", "TV", "Music")
	env.SeedRootDirs(filepath.Join(base, "Movies"))

	got := runJSON(t, base)

	want := []string{filepath.Join(base, "Music"), filepath.Join(base, "TV")}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUnmappedCmd_CaseAndTrailingSeparatorInsensitive(t *testing.T) {
	env := testutil.NewTestEnv(t)
	base := makeLibrary(t, env, "Movies", "TV")
	env.SeedRootDirs(strings.ToUpper(filepath.Join(base, "movies")) + "/")

	got := runJSON(t, base)

	if len(got) != 1 || got[0] != filepath.Join(base, "TV") {
		t.Errorf("got %v, want only TV", got)
	}
}

func TestUnmappedCmd_ExcludesTrackedPaths(t *testing.T) {
	env := testutil.NewTestEnv(t)
	base := makeLibrary(t, env, "Movies", "TV")

	s := env.OpenStore()
	if err := s.TrackPath(context.Background(), filepath.Join(base, "TV")); err != nil {
		t.Fatalf("failed to track path: %v", err)
	}

	got := runJSON(t, base)

	if len(got) != 1 || got[0] != filepath.Join(base, "Movies") {
		t.Errorf("got %v, want only Movies", got)
	}
}

func TestUnmappedCmd_ExcludesIgnoredPaths(t *testing.T) {
	env := testutil.NewTestEnv(t)
	base := makeLibrary(t, env, "Movies", "Downloads")
	env.WriteConfig("library:\n  ignored_paths:\n    - " + filepath.Join(base, "Downloads") + "\n")

	got := runJSON(t, base)

	if len(got) != 1 || got[0] != filepath.Join(base, "Movies") {
		t.Errorf("got %v, want only Movies", got)
	}
}

func TestUnmappedCmd_MissingDirectory(t *testing.T) {
	env := testutil.NewTestEnv(t)
	missing := filepath.Join(env.CreateTestDir("gone"), "nothing-here")

	cmd := createTestCommand()
	cmd.SetArgs([]string{missing})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unmapped command failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "No unmapped folders") {
		t.Errorf("unexpected output: %s", stdout.String())
	}
}

func TestUnmappedCmd_InvalidPath(t *testing.T) {
	testutil.NewTestEnv(t)

	cmd := createTestCommand()
	cmd.SetArgs([]string{"/media/<bad>"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func createTestCommand() *cobra.Command {
	// Reset flag variables
	unmappedOutput = "table"
	unmappedFormat = ""

	cmd := &cobra.Command{
		Use:     UnmappedCmd.Use,
		Short:   UnmappedCmd.Short,
		Long:    UnmappedCmd.Long,
		Example: UnmappedCmd.Example,
		Args:    UnmappedCmd.Args,
		PreRunE: UnmappedCmd.PreRunE,
		RunE:    UnmappedCmd.RunE,
	}

	cmd.Flags().StringVarP(&unmappedOutput, "output", "o", "table", "")

	return cmd
}
