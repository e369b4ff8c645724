package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/yoda/pkg/core"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's log and mentions",
	Long:  `Print logs/<today>.md, then every line in other markdown files that mentions today's date (YYYY-MM-DD).`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()

		if err := renderToday(cmd.Context(), store); err != nil {
			fatal("Error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func renderToday(ctx context.Context, store *core.Service) error {
	report, err := store.Today(ctx)
	if err != nil {
		return err
	}
	return report.Render(os.Stdout, os.Stderr)
}
