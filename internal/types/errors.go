package types

import "errors"

var (
	// ErrConfiguration reports an invalid option value detected before any filesystem access.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrNotFound reports a missing scan root or a missing referenced ignore file.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory reports a scan root that exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)
