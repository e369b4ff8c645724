package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/yoda/pkg/core"
)

// Watch reports changes to markdown files until ctx is done. The returned
// channel is closed when watching stops.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := r.recursiveAdd(watcher, r.Path); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan core.Event, r.config.EventBuffer)
	w := &watchWorker{repo: r, watcher: watcher, events: events}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

// recursiveAdd registers root and every directory below it.
func (r *Repository) recursiveAdd(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			r.config.Logger.Debug("cannot watch directory", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

type watchWorker struct {
	repo    *Repository
	watcher *fsnotify.Watcher
	events  chan core.Event
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
		}
	}()
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// handle maps a filesystem event to a core.Event and forwards it.
func (w *watchWorker) handle(ctx context.Context, event fsnotify.Event) {
	w.repo.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.repo.recursiveAdd(w.watcher, event.Name); err != nil {
				w.repo.config.Logger.Debug("cannot watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}

	rel := w.repo.rel(event.Name)
	if !w.repo.selected(rel) {
		return
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return
	}

	select {
	case w.events <- core.Event{Type: eType, Path: rel, Timestamp: time.Now().Unix()}:
	case <-ctx.Done():
	}
}
