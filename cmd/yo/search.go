package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/yoda/pkg/core"
)

var (
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   `search "query"`,
	Short: "Search across notes directory",
	Long: `Search every markdown file in the notes home, ignoring case.
Matches are printed as <path>:<line>:<text>, sorted by path then line.
Files that cannot be read are reported on stderr and skipped.`,
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		args, flags, ok := parseTextCommand(cmd, args, "--json")
		if !ok {
			return
		}
		searchJSON = flags["--json"]
		if len(args) == 0 {
			fmt.Println(`Usage: yo search "query"`)
			os.Exit(ExitError)
		}

		store, _ := openStore()

		report, err := store.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			fatal("Error", err)
		}

		if searchJSON {
			writeJSON(report.Matches())
			writeWarnings(report.Failures())
			return
		}

		if err := report.Render(os.Stdout, os.Stderr); err != nil {
			fatal("Error writing report", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output matches as JSON")
}

func writeJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fatal("Error encoding JSON", err)
	}
}

func writeWarnings(failures []core.FileResult) {
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "Warning: Could not read %s: %v\n", f.Path, f.Err)
	}
}
