package rootdir

import "errors"

// ErrInvalidPath is returned when a path is empty or not a recognized path shape.
var ErrInvalidPath = errors.New("invalid path")

// ErrNotFound is returned when no root directory has the requested ID.
var ErrNotFound = errors.New("root directory not found")
