package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   `add "text"`,
	Short: "Append timestamped entry to inbox.md",
	Long:  `Append a "- [YYYY-MM-DD HH:MM:SS] text" line to inbox.md in the notes home. Multiple arguments are joined with spaces.`,
	// Note text may start with a dash; see textArgs.
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		args, _, ok := parseTextCommand(cmd, args)
		if !ok {
			return
		}
		if len(args) == 0 {
			fmt.Println(`Usage: yo add "text"`)
			os.Exit(ExitError)
		}

		store, _ := openStore()

		if _, err := store.Append(cmd.Context(), strings.Join(args, " ")); err != nil {
			fatal("Error", err)
		}

		fmt.Println("Added to inbox.md")
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
