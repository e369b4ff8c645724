package platform

import (
	"github.com/aretw0/yoda/pkg/core"
)

// New builds the note store for the notes home at uri.
//
//	store, err := yoda.New(home, yoda.WithLogger(logger))
//
// The URI argument is adapter-specific (a directory path for 'fs').
func New(uri string, opts ...Option) (*core.Service, error) {
	// 1. Initialize the repository (verifies the notes home)
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	// We also need to parse options here to get the logger and clock for wiring
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Initialize Domain Service
	return core.NewService(repo, o.now, o.logger), nil
}
