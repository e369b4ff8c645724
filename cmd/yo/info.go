package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	infoJSON bool
)

// infoOutput is the --json shape of the info command.
type infoOutput struct {
	Home       string `json:"home"`
	Source     string `json:"source"`
	ConfigFile string `json:"config_file"`
	State      any    `json:"state"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where notes live and what the store sees",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg := openStore()

		out := infoOutput{
			Home:       cfg.Home,
			Source:     string(cfg.Source),
			ConfigFile: cfg.FilePath,
			State:      store.State(),
		}

		if infoJSON {
			writeJSON(out)
			return
		}

		fmt.Printf("Notes home:  %s (from %s)\n", out.Home, out.Source)
		fmt.Printf("Config file: %s\n", out.ConfigFile)
		fmt.Println("State:")
		writeJSON(out.State)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
}
