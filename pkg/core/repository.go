package core

import "context"

// LineMatcher decides whether a single line (without its terminator) matches.
type LineMatcher func(line string) bool

// ScanRequest describes a traversal of every markdown file in the notes home.
type ScanRequest struct {
	// Match is applied to every line of every file.
	Match LineMatcher
	// Exclude lists relative paths that are skipped entirely. Paths are
	// compared after resolution against the notes home, not by content.
	Exclude []string
}

// Repository defines the contract for reading and appending notes.
// Adhering to this interface keeps the store independent of where the
// notes actually live.
type Repository interface {
	// Initialize verifies the notes home is ready (exists and is a directory).
	Initialize(ctx context.Context) error

	// Append writes data to the end of the file at relPath with a single
	// write, creating the file if needed. Existing content is never read.
	Append(ctx context.Context, relPath string, data string) error

	// Read returns the full content of relPath. A missing file yields an
	// error matching fs.ErrNotExist.
	Read(ctx context.Context, relPath string) (string, error)

	// Scan walks every markdown file in sorted relative path order and
	// returns one FileResult per file. Per-file failures are reported in the
	// result, never as the returned error.
	Scan(ctx context.Context, req ScanRequest) ([]FileResult, error)
}

// Watchable defines an interface for repositories that can report changes.
type Watchable interface {
	// Watch emits an Event for every change to a markdown file until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
