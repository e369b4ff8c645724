package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/yoda"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of yo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("yo version %s\n", strings.TrimSpace(yoda.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
