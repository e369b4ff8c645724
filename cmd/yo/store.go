package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/yoda"
	"github.com/aretw0/yoda/internal/config"
	"github.com/aretw0/yoda/pkg/core"
)

// openStore resolves the configuration and opens the note store, exiting
// with setup guidance when the notes home is missing.
func openStore() (*core.Service, *config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}
	slog.Debug("resolved notes home", "path", cfg.Home, "source", cfg.Source)

	store, err := yoda.New(cfg.Home,
		yoda.WithLogger(slog.Default()),
		yoda.WithIgnore(cfg.Ignore...),
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrHomeNotFound):
			fmt.Fprintf(os.Stderr, "Error: %s does not exist.\n\n", cfg.Home)
		case errors.Is(err, core.ErrHomeNotDir):
			fmt.Fprintf(os.Stderr, "Error: %s is not a directory.\n\n", cfg.Home)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(ExitConfigError)
		}
		fmt.Fprintln(os.Stderr, "Run setup first:")
		fmt.Fprintln(os.Stderr, "  yo setup")
		os.Exit(ExitError)
	}

	return store, cfg
}
