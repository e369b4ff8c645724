// Package core holds the note store domain: entries, matches and the
// per-file scan results that reports are built from.
package core

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	// InboxName is the append-only file that collects quick notes.
	InboxName = "inbox.md"
	// LogsDir holds one log file per calendar day.
	LogsDir = "logs"

	// TimestampLayout is the local-time format of inbox entries.
	TimestampLayout = "2006-01-02 15:04:05"
	// DateLayout names daily log files and is the token Today scans for.
	DateLayout = "2006-01-02"
)

// LogPath returns the slash-separated path of the log file for day, relative
// to the notes home.
func LogPath(day time.Time) string {
	return LogsDir + "/" + day.Format(DateLayout) + ".md"
}

// ComparePaths orders slash-separated relative paths one component at a
// time, so "a/z.md" sorts before "a-b.md" and "a.md".
func ComparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}

// Entry is a single line appended to the inbox.
type Entry struct {
	Timestamp time.Time
	Text      string
}

// String renders the entry as it is stored, without the trailing newline.
func (e Entry) String() string {
	return "- [" + e.Timestamp.Format(TimestampLayout) + "] " + e.Text
}

// Match is one line that satisfied a scan predicate.
type Match struct {
	Path string `json:"path"` // relative to the notes home, slash-separated
	Line int    `json:"line"` // 1-based
	Text string `json:"text"` // trailing whitespace stripped
}

// String renders the match as "<path>:<line>:<text>".
func (m Match) String() string {
	return m.Path + ":" + strconv.Itoa(m.Line) + ":" + m.Text
}

// FileResult is the outcome of scanning one file. Err is set when the file
// could not be read or decoded; in that case Matches is empty.
type FileResult struct {
	Path    string
	Matches []Match
	Err     error
}

// Failed reports whether the file was skipped.
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// EventType represents the type of change in the notes home.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a markdown file in the notes home.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
