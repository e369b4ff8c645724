package main

import (
	"github.com/spf13/cobra"
)

// textArgs splits the raw arguments of a free-text command. Flags are only
// recognised before the first word of text; a "--" ends them explicitly.
// Everything after that is text, even when it starts with a dash.
func textArgs(args []string, known ...string) (text []string, flags map[string]bool) {
	flags = make(map[string]bool)
	for i, arg := range args {
		if arg == "--" {
			return args[i+1:], flags
		}
		if !isKnown(arg, known) {
			return args[i:], flags
		}
		flags[arg] = true
	}
	return nil, flags
}

func isKnown(arg string, known []string) bool {
	for _, k := range known {
		if arg == k {
			return true
		}
	}
	return false
}

// commonTextFlags are honoured by every free-text command.
var commonTextFlags = []string{"-h", "--help", "-v", "--verbose"}

// parseTextCommand applies the common flags and returns the remaining text
// arguments plus any extra flags seen. It reports false when help was shown.
func parseTextCommand(cmd *cobra.Command, args []string, extra ...string) ([]string, map[string]bool, bool) {
	text, flags := textArgs(args, append(extra, commonTextFlags...)...)
	if flags["-h"] || flags["--help"] {
		_ = cmd.Help()
		return nil, flags, false
	}
	if flags["-v"] || flags["--verbose"] {
		verbose = true
		configureLogging()
	}
	return text, flags, true
}
