// Package cmdutil holds helpers shared by the command implementations.
package cmdutil

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leefowlercu/rootdirs/internal/config"
)

// ResolvePath expands "~" and makes local relative paths absolute. Windows
// drive and network paths are returned unchanged, since they are already
// rooted. Empty input returns an empty string.
func ResolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if isForeignRooted(path) {
		return path, nil
	}

	absPath, err := filepath.Abs(config.ExpandPath(path))
	if err != nil {
		return "", err
	}

	return filepath.Clean(absPath), nil
}

// isForeignRooted reports drive-letter paths (C:, C:\, C:/) and UNC paths,
// which filepath would otherwise treat as relative on non-Windows hosts.
func isForeignRooted(path string) bool {
	if isDriveLetter(path) {
		return len(path) == 2 || path[2] == '\\' || path[2] == '/'
	}
	return strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "//")
}

func isDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ParseID parses a root directory ID argument.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q; must be a positive integer", s)
	}
	return id, nil
}
