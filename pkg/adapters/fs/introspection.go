package fs

import (
	"context"
	"os"
	"time"

	"github.com/aretw0/introspection"

	"github.com/aretw0/yoda/pkg/core"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path            string     `json:"path"`
	InboxPresent    bool       `json:"inbox_present"`
	MarkdownFiles   int        `json:"markdown_files"`
	IgnorePatterns  []string   `json:"ignore_patterns,omitempty"`
	WatcherActive   bool       `json:"watcher_active"`
	LastScan        *time.Time `json:"last_scan,omitempty"`
	LastScanFiles   int        `json:"last_scan_files,omitempty"`
	LastScanSkipped int        `json:"last_scan_skipped,omitempty"`
}

// State implements introspection.Introspectable.
// It walks the notes home to count markdown files.
func (r *Repository) State() any {
	files, _ := r.Files(context.Background())
	_, err := os.Stat(r.resolve(core.InboxName))

	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:            r.Path,
		InboxPresent:    err == nil,
		MarkdownFiles:   len(files),
		IgnorePatterns:  r.config.Ignore,
		WatcherActive:   r.watcherActive,
		LastScan:        r.lastScan,
		LastScanFiles:   r.lastScanFiles,
		LastScanSkipped: r.lastScanSkipped,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordScan(results []core.FileResult) {
	skipped := 0
	for _, res := range results {
		if res.Failed() {
			skipped++
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastScan = &now
	r.lastScanFiles = len(results)
	r.lastScanSkipped = skipped
}
