package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	notesource "github.com/aretw0/yoda/pkg/adapters/lifecycle"
)

var (
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show today's report and refresh it when notes change",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		store, _ := openStore()

		if err := renderToday(ctx, store); err != nil {
			fatal("Error", err)
		}

		events, err := store.Watch(ctx)
		if err != nil {
			fatal("Failed to watch notes home", err)
		}

		source := notesource.NewSource(events, watchDebounce)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start change feed", err)
		}

		for e := range source.Events() {
			slog.Debug("change detected", "event", e.String())
			fmt.Println()
			if err := renderToday(ctx, store); err != nil {
				slog.Error("refresh failed", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Wait this long after the last change before refreshing")
}
