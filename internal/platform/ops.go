package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/yoda/pkg/adapters/fs"
	"github.com/aretw0/yoda/pkg/core"
)

// Init prepares the repository for the notes home at uri and runs its
// initialization. With the default options a missing notes home fails with
// core.ErrHomeNotFound.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Initialize based on Adapter
	var repo core.Repository
	var err error

	switch o.adapter {
	case "fs":
		repo, err = initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err != nil {
		return nil, err
	}

	// 3. Run Initialization
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// initFS handles the initialization logic for the Filesystem adapter
func initFS(path string, o *options) (core.Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("notes home path is empty")
	}

	mustExist := true
	if val, ok := o.config["must_exist"].(bool); ok {
		mustExist = val
	}
	ignore, _ := o.config["ignore"].([]string)
	eventBuffer, _ := o.config["event_buffer"].(int)

	if o.logger != nil {
		o.logger.Debug("opening notes home", "path", path, "must_exist", mustExist, "ignore", ignore)
	}

	return fs.NewRepository(fs.Config{
		Path:        path,
		MustExist:   mustExist,
		Logger:      o.logger,
		Ignore:      ignore,
		EventBuffer: eventBuffer,
	}), nil
}
