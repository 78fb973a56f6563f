package rootdir

import "strings"

// PathKey returns the comparison form of path. Backslashes become forward
// slashes, runs of separators collapse to one (a leading UNC "//" is kept),
// trailing separators are removed and the result is lower-cased. A path made
// only of separators becomes "/".
func PathKey(path string) string {
	if path == "" {
		return ""
	}

	s := strings.ReplaceAll(path, `\`, "/")

	var b strings.Builder
	b.Grow(len(s))
	if strings.HasPrefix(s, "//") {
		b.WriteString("//")
		s = strings.TrimLeft(s, "/")
	}

	prevSep := false
	for _, r := range s {
		if r == '/' {
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		b.WriteRune(r)
	}

	key := strings.TrimRight(b.String(), "/")
	if key == "" {
		return "/"
	}
	return strings.ToLower(key)
}

// SamePath reports whether a and b name the same folder, ignoring case,
// separator style and repeated or trailing separators.
func SamePath(a, b string) bool {
	return PathKey(a) == PathKey(b)
}
