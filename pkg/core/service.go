package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"
)

// Service is the note store. It appends to the inbox, searches every
// markdown file and aggregates the day's log with mentions of the date.
type Service struct {
	repo   Repository
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a new Service. A nil clock means time.Now and a nil
// logger discards debug output.
func NewService(repo Repository, now func() time.Time, logger *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, now: now, logger: logger}
}

// Append writes a timestamped entry to the inbox and returns it.
// An empty text still produces an entry.
func (s *Service) Append(ctx context.Context, text string) (Entry, error) {
	entry := Entry{Timestamp: s.now(), Text: text}

	if err := s.repo.Append(ctx, InboxName, entry.String()+"\n"); err != nil {
		return Entry{}, fmt.Errorf("failed to append to %s: %w", InboxName, err)
	}

	s.logger.Debug("appended entry", "file", InboxName, "timestamp", entry.Timestamp.Format(TimestampLayout))
	return entry, nil
}

// Search matches query against every line of every markdown file, ignoring
// case. An empty query matches every line.
func (s *Service) Search(ctx context.Context, query string) (SearchReport, error) {
	needle := strings.ToLower(query)

	results, err := s.repo.Scan(ctx, ScanRequest{
		Match: func(line string) bool {
			return strings.Contains(strings.ToLower(line), needle)
		},
	})
	if err != nil {
		return SearchReport{}, fmt.Errorf("search failed: %w", err)
	}

	s.logScan("search", results)
	return SearchReport{Query: query, Results: results}, nil
}

// Today loads the log file for the current local date and collects every
// other line that mentions the date verbatim. The date match is case
// sensitive, unlike Search.
func (s *Service) Today(ctx context.Context) (TodayReport, error) {
	day := s.now()
	date := day.Format(DateLayout)
	logPath := LogPath(day)

	report := TodayReport{Date: date, LogPath: logPath}

	content, err := s.repo.Read(ctx, logPath)
	switch {
	case err == nil:
		report.Log = content
	case errors.Is(err, fs.ErrNotExist):
		// A missing log is the normal state for most days.
	default:
		report.LogErr = err
		s.logger.Debug("log file unreadable", "path", logPath, "error", err)
	}

	results, err := s.repo.Scan(ctx, ScanRequest{
		Match: func(line string) bool {
			return strings.Contains(line, date)
		},
		Exclude: []string{logPath},
	})
	if err != nil {
		return TodayReport{}, fmt.Errorf("scan for %s failed: %w", date, err)
	}

	s.logScan("today", results)
	report.Mentions = results
	return report, nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	return w.Watch(ctx)
}

func (s *Service) logScan(op string, results []FileResult) {
	var matches, failed int
	for _, r := range results {
		matches += len(r.Matches)
		if r.Failed() {
			failed++
		}
	}
	s.logger.Debug("scan finished", "op", op, "files", len(results), "matches", matches, "failed", failed)
}
