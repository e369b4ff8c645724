package yoda

import (
	"log/slog"
	"time"

	"github.com/aretw0/yoda/internal/platform"
	"github.com/aretw0/yoda/pkg/core"
)

// Version exposes the version of the tool. It is overridden at build time
// with -ldflags "-X github.com/aretw0/yoda.Version=...".
var Version = "dev"

// --- Configuration ---

// Option defines a functional option for configuring the note store.
type Option = platform.Option

// WithMustExist controls whether the notes home must already exist (default true).
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the source of the current time.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithIgnore excludes files matching doublestar patterns from scans.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithEventBuffer allows specifying the size of the watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// --- Factory ---

// New creates the note store for the notes home at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}
