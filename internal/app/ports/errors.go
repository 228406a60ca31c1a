package ports

import "errors"

// ErrConflict also covers optimistic-version mismatches on the action
// aggregate; callers retry or surface 409.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
