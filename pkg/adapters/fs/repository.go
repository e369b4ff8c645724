// Package fs implements core.Repository on top of a notes home directory.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/yoda/pkg/core"
)

// markdownPattern selects the files that are scanned.
const markdownPattern = "**/*.md"

// Repository implements core.Repository using the filesystem.
type Repository struct {
	Path   string
	config Config

	mu              sync.RWMutex
	watcherActive   bool
	lastScan        *time.Time
	lastScanFiles   int
	lastScanSkipped int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path        string
	MustExist   bool // fail instead of creating a missing notes home
	Logger      *slog.Logger
	Ignore      []string // doublestar patterns matched against slash-separated relative paths
	EventBuffer int      // size of the Watch channel, zero means 100
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 100
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize checks the notes home. With MustExist it fails with
// core.ErrHomeNotFound when the directory is missing, otherwise it creates it.
func (r *Repository) Initialize(ctx context.Context) error {
	for _, p := range r.config.Ignore {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}

	if !r.config.MustExist {
		if err := os.MkdirAll(r.Path, 0755); err != nil {
			return fmt.Errorf("failed to create notes home: %w", err)
		}
		return nil
	}

	info, err := os.Stat(r.Path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", core.ErrHomeNotFound, r.Path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat notes home: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", core.ErrHomeNotDir, r.Path)
	}
	return nil
}

// Append opens relPath in append mode and writes data in a single call.
func (r *Repository) Append(ctx context.Context, relPath string, data string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.resolve(relPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read returns the content of relPath. The content must be valid UTF-8.
func (r *Repository) Read(ctx context.Context, relPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.resolve(relPath))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", core.ErrInvalidEncoding
	}
	return string(data), nil
}

// Scan walks the notes home and applies req.Match to every line of every
// markdown file.
//
// Strategy:
//  1. Walk the whole tree and collect the relative paths of markdown files.
//  2. Sort them so output does not depend on directory enumeration order.
//  3. Read each file on its own; a failure only marks that file as skipped.
func (r *Repository) Scan(ctx context.Context, req core.ScanRequest) ([]core.FileResult, error) {
	paths, results, err := r.walk(ctx)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(req.Exclude))
	for _, rel := range req.Exclude {
		excluded[r.resolve(rel)] = true
	}

	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		full := r.resolve(rel)
		if excluded[full] {
			continue
		}

		res := scanFile(full, rel, req.Match)
		if res.Failed() {
			r.config.Logger.Debug("skipping unreadable file", "path", rel, "error", res.Err)
		}
		results = append(results, res)
	}

	slices.SortStableFunc(results, func(a, b core.FileResult) int {
		return core.ComparePaths(a.Path, b.Path)
	})

	r.recordScan(results)
	return results, nil
}

// Files returns the sorted relative paths of every markdown file.
func (r *Repository) Files(ctx context.Context) ([]string, error) {
	paths, _, err := r.walk(ctx)
	return paths, err
}

// walk collects markdown files below the notes home. Directories that
// cannot be read are returned as failed results instead of aborting.
func (r *Repository) walk(ctx context.Context) ([]string, []core.FileResult, error) {
	var paths []string
	var failures []core.FileResult

	err := filepath.WalkDir(r.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == r.Path {
				return err
			}
			rel := r.rel(path)
			if r.ignored(rel) || (d != nil && !d.IsDir() && !r.selected(rel)) {
				return nil
			}
			failures = append(failures, core.FileResult{Path: rel, Err: err})
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := r.rel(path)
		if !r.selected(rel) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	slices.SortFunc(paths, core.ComparePaths)
	return paths, failures, nil
}

// selected reports whether a relative path is a markdown file that is not ignored.
func (r *Repository) selected(rel string) bool {
	if ok, _ := doublestar.Match(markdownPattern, rel); !ok {
		return false
	}
	return !r.ignored(rel)
}

// ignored reports whether rel matches one of the configured ignore patterns.
func (r *Repository) ignored(rel string) bool {
	for _, p := range r.config.Ignore {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func (r *Repository) resolve(relPath string) string {
	return filepath.Join(r.Path, filepath.FromSlash(relPath))
}

func (r *Repository) rel(path string) string {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// scanFile reads one file and collects the lines accepted by match.
// A file that cannot be read or is not valid UTF-8 yields no matches.
func scanFile(fullPath, relPath string, match core.LineMatcher) core.FileResult {
	res := core.FileResult{Path: relPath}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		res.Err = err
		return res
	}

	var matches []core.Match
	for i, line := range splitLines(string(data)) {
		if !utf8.ValidString(line) {
			res.Err = fmt.Errorf("%w at line %d", core.ErrInvalidEncoding, i+1)
			return res
		}
		if match(line) {
			matches = append(matches, core.Match{
				Path: relPath,
				Line: i + 1,
				Text: strings.TrimRightFunc(line, unicode.IsSpace),
			})
		}
	}

	res.Matches = matches
	return res
}

// splitLines splits s on "\n", "\r\n" and "\r". A trailing terminator
// does not produce an empty last line.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}
