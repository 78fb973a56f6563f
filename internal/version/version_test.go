package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()

	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func withLinkerVars(t *testing.T, v, commit, date string) {
	t.Helper()

	origV, origC, origD := version, gitCommit, buildDate
	version, gitCommit, buildDate = v, commit, date
	t.Cleanup(func() { version, gitCommit, buildDate = origV, origC, origD })
}

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		linker     [3]string
		buildInfo  *debug.BuildInfo
		wantVer    string
		wantCommit string
		wantDate   string
	}{
		{
			name:       "no metadata",
			wantVer:    "dev",
			wantCommit: "unknown",
			wantDate:   "unknown",
		},
		{
			name:       "linker flags",
			linker:     [3]string{"1.2.0", "abc1234", "2026-01-10T15:04:05Z"},
			wantVer:    "1.2.0",
			wantCommit: "abc1234",
			wantDate:   "2026-01-10T15:04:05Z",
		},
		{
			name: "module build info",
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "def5678901234"},
					{Key: "vcs.time", Value: "2026-02-01T10:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			wantVer:    "v0.3.1",
			wantCommit: "def5678-dirty",
			wantDate:   "2026-02-01T10:00:00Z",
		},
		{
			name:   "linker flags win over build info",
			linker: [3]string{"2.0.0", "", ""},
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0011223"}},
			},
			wantVer:    "2.0.0",
			wantCommit: "0011223",
			wantDate:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withLinkerVars(t, tt.linker[0], tt.linker[1], tt.linker[2])
			withBuildInfo(t, tt.buildInfo)

			got := Get()
			assert.Equal(t, tt.wantVer, got.Version)
			assert.Equal(t, tt.wantCommit, got.GitCommit)
			assert.Equal(t, tt.wantDate, got.BuildDate)
			assert.NotEmpty(t, got.GoVersion)
			assert.Contains(t, got.Platform, "/")
		})
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc1234",
		BuildDate: "2026-01-10T15:04:05Z",
		GoVersion: "go1.25.0",
		Platform:  "linux/amd64",
	}

	got := info.String()
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "Version:    1.0.0", lines[0])
	assert.Equal(t, "Platform:   linux/amd64", lines[4])
}
