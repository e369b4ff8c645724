// Package yoda is the Composition Root for the yoda note store.
//
// It connects the core logic (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) using the Hexagonal Architecture pattern.
//
// A notes home is a plain directory of markdown files:
//
//	inbox.md            append-only, one "- [YYYY-MM-DD HH:MM:SS] text" per line
//	logs/YYYY-MM-DD.md  one log per day, written by you
//	**/*.md             everything else, searched as plain text
//
// Usage:
//
//	store, err := yoda.New(home, yoda.WithLogger(logger))
//
//	// Append to the inbox
//	_, err = store.Append(ctx, "buy milk")
//
//	// Case-insensitive search across every markdown file
//	report, err := store.Search(ctx, "milk")
//	err = report.Render(os.Stdout, os.Stderr)
package yoda
