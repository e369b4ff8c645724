package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/yoda/pkg/core"
)

// options holds the internal configuration for the note store.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	now        func() time.Time
	config     map[string]interface{}
}

// Option defines a functional option for configuring the note store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		adapter:    "fs",
		now:        nil,
		config:     make(map[string]interface{}),
	}
}

// WithMustExist controls whether the notes home must already exist.
// By default it must: the store never creates it. Setup passes false to
// create the directory.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the source of the current time (timestamps and
// today's date). Mostly useful in tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIgnore excludes files matching the given doublestar patterns from
// every scan. Patterns match slash-separated paths relative to the notes home.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.config["ignore"] = patterns
	}
}

// WithEventBuffer allows specifying the size of the watch event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}
