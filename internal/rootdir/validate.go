package rootdir

import (
	"fmt"
	"strings"
)

// invalidPathChars are rejected anywhere in a path.
const invalidPathChars = `<>"|?*`

// ValidatePath checks that path is a well-formed local or network path.
// Accepted shapes are drive-letter rooted (C:\TV, C:/TV), UNC with either
// separator (\\server\share, //server//share) and POSIX absolute (/srv/tv).
// The returned error wraps ErrInvalidPath.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w; path is empty", ErrInvalidPath)
	}

	for _, r := range path {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w; control character in %q", ErrInvalidPath, path)
		}
		if strings.ContainsRune(invalidPathChars, r) {
			return fmt.Errorf("%w; character %q not allowed in %q", ErrInvalidPath, r, path)
		}
	}

	switch {
	case isDriveRooted(path):
		return nil
	case isUNC(path):
		if !hasHostAndShare(path) {
			return fmt.Errorf("%w; network path %q needs a host and a share", ErrInvalidPath, path)
		}
		return nil
	case path[0] == '/':
		return nil
	}

	return fmt.Errorf("%w; %q is not an absolute path", ErrInvalidPath, path)
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func isDriveRooted(path string) bool {
	if len(path) < 3 {
		return false
	}
	c := path[0]
	isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	return isLetter && path[1] == ':' && isSeparator(path[2])
}

func isUNC(path string) bool {
	return len(path) >= 2 && isSeparator(path[0]) && isSeparator(path[1])
}

// hasHostAndShare reports whether a UNC path names at least a host and a share.
func hasHostAndShare(path string) bool {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(segments) < 2 {
		return false
	}
	return strings.TrimSpace(segments[0]) != "" && strings.TrimSpace(segments[1]) != ""
}
