package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/yoda/internal/config"
	"github.com/aretw0/yoda/internal/setup"
)

var (
	setupHome string
	setupYes  bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup (first time)",
	Long: `Choose and create the notes directory, remember it in the config file and
optionally export YODA_HOME from your shell config.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		userHome, err := os.UserHomeDir()
		if err != nil {
			fatal("Error: cannot determine home directory", err)
		}

		h := &setup.Handler{
			In:          os.Stdin,
			Out:         os.Stdout,
			Interactive: term.IsTerminal(int(os.Stdin.Fd())),
			AssumeYes:   setupYes,
			UserHome:    userHome,
			Shell:       os.Getenv("SHELL"),
			ConfigPath:  config.Path(),
			Logger:      slog.Default(),
		}

		if _, err := h.Run(setup.Options{Home: setupHome}); err != nil {
			fatal("Error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.Flags().StringVar(&setupHome, "home", "", "Notes directory (skips the prompt)")
	setupCmd.Flags().BoolVarP(&setupYes, "yes", "y", false, "Update the shell config without asking")
}
