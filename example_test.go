package yoda_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/yoda"
)

// Example_basic demonstrates appending to the inbox and searching it back.
func Example_basic() {
	// Create a temporary notes home for the example
	home, err := os.MkdirTemp("", "yoda-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(home)

	clock := func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local) }

	store, err := yoda.New(home, yoda.WithClock(clock))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Append an entry
	if _, err := store.Append(ctx, "buy milk"); err != nil {
		log.Fatal(err)
	}

	// 2. Search for it
	report, err := store.Search(ctx, "MILK")
	if err != nil {
		log.Fatal(err)
	}
	if err := report.Render(os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
	// Output:
	// inbox.md:1:- [2024-01-01 09:00:00] buy milk
}

// Example_today shows the daily report: the log first, then mentions of the date elsewhere.
func Example_today() {
	home, err := os.MkdirTemp("", "yoda-today-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(home)

	if err := os.MkdirAll(filepath.Join(home, "logs"), 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, "logs", "2024-01-01.md"), []byte("hello"), 0644); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, "other.md"), []byte("2024-01-01 meeting\n"), 0644); err != nil {
		log.Fatal(err)
	}

	clock := func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local) }
	store, err := yoda.New(home, yoda.WithClock(clock))
	if err != nil {
		log.Fatal(err)
	}

	report, err := store.Today(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(report.Matches()), "mention(s)")
	// Output:
	// 1 mention(s)
}
