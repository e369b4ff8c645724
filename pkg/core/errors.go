package core

import "errors"

// Common errors.
var (
	// ErrHomeNotFound means the notes home does not exist; run setup first.
	ErrHomeNotFound = errors.New("notes home does not exist")
	// ErrHomeNotDir means the notes home path exists but is not a directory.
	ErrHomeNotDir = errors.New("notes home is not a directory")
	// ErrInvalidEncoding is reported for files that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid utf-8")
	// ErrNotWatchable is returned when the repository cannot report changes.
	ErrNotWatchable = errors.New("repository does not support watching")
)
