package core

import (
	"fmt"
	"io"
	"strings"
)

// Messages printed when a report has nothing to show.
const (
	NoMatchesMessage  = "No matches found."
	NoLogMessage      = "No log file for today"
	NoMentionsMessage = "No other mentions found."
)

// SearchReport is the result of Service.Search.
type SearchReport struct {
	Query   string
	Results []FileResult
}

// Matches returns every match in file order, then line order.
func (r SearchReport) Matches() []Match {
	return collectMatches(r.Results)
}

// Failures returns the files that were skipped.
func (r SearchReport) Failures() []FileResult {
	return collectFailures(r.Results)
}

// Render writes the match lines to out and one warning per skipped file to warn.
func (r SearchReport) Render(out, warn io.Writer) error {
	p := &printer{w: out}
	matches := r.Matches()
	for _, m := range matches {
		p.println(m.String())
	}
	if len(matches) == 0 {
		p.println(NoMatchesMessage)
	}
	if p.err != nil {
		return p.err
	}
	return writeWarnings(warn, r.Failures())
}

// TodayReport is the result of Service.Today.
type TodayReport struct {
	Date     string
	LogPath  string
	Log      string // raw content of the day's log, if any
	LogErr   error  // set when the log exists but could not be read
	Mentions []FileResult
}

// HasLog reports whether the day's log has any non-whitespace content.
// A whitespace-only log is treated like a missing one.
func (r TodayReport) HasLog() bool {
	return strings.TrimSpace(r.Log) != ""
}

// Matches returns the mentions of the date outside the day's log.
func (r TodayReport) Matches() []Match {
	return collectMatches(r.Mentions)
}

// Failures returns the files that were skipped, the log file included.
func (r TodayReport) Failures() []FileResult {
	failures := collectFailures(r.Mentions)
	if r.LogErr != nil {
		failures = append([]FileResult{{Path: r.LogPath, Err: r.LogErr}}, failures...)
	}
	return failures
}

// Render writes both parts of the report to out, log first, and the
// warnings to warn.
func (r TodayReport) Render(out, warn io.Writer) error {
	p := &printer{w: out}

	p.printf("=== Today's log (%s) ===\n\n", r.Date)
	if r.HasLog() {
		p.println(r.Log)
	} else {
		p.println(NoLogMessage)
	}

	p.printf("\n=== Other mentions of %s ===\n\n", r.Date)
	matches := r.Matches()
	for _, m := range matches {
		p.println(m.String())
	}
	if len(matches) == 0 {
		p.println(NoMentionsMessage)
	}
	if p.err != nil {
		return p.err
	}
	return writeWarnings(warn, r.Failures())
}

func collectMatches(results []FileResult) []Match {
	var matches []Match
	for _, r := range results {
		matches = append(matches, r.Matches...)
	}
	return matches
}

func collectFailures(results []FileResult) []FileResult {
	var failed []FileResult
	for _, r := range results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

func writeWarnings(w io.Writer, failures []FileResult) error {
	p := &printer{w: w}
	for _, f := range failures {
		p.printf("Warning: Could not read %s: %v\n", f.Path, f.Err)
	}
	return p.err
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}
