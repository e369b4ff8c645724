package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/yoda/internal/config"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yo",
	Short: "yoda - minimal local-first CLI",
	Long: `yoda keeps your notes as plain markdown files in one directory.

Usage:
  yo setup            Interactive setup (first time)
  yo add "text"       Append timestamped entry to inbox.md
  yo search "query"   Search across notes directory
  yo today            Show today's log and mentions

The notes directory is $YODA_HOME, else "home" in ~/.config/yoda/config.yml,
else ~/yoda-home.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()

		if err := config.LoadDotEnv(); err != nil {
			slog.Warn("could not load .env", "error", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(cmd.Long)
		os.Exit(ExitError)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		fmt.Fprintln(os.Stderr, rootCmd.Long)
		stop()
		os.Exit(ExitError)
	}
}

// configureLogging installs the default slog logger on stderr, at debug
// level when --verbose is set.
func configureLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
