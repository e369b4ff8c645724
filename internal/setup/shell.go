package setup

import (
	"os"
	"path/filepath"
	"strings"
)

// Shell is the detected login shell and the config file setup may edit.
type Shell struct {
	Name   string
	RCFile string // empty when unknown
}

// DetectShell inspects $SHELL. Bash prefers ~/.bashrc and falls back to
// ~/.bash_profile when the former does not exist.
func DetectShell(shellEnv, userHome string) Shell {
	base := filepath.Base(shellEnv)
	switch {
	case strings.Contains(base, "zsh"):
		return Shell{Name: "zsh", RCFile: filepath.Join(userHome, ".zshrc")}
	case strings.Contains(base, "bash"):
		bashrc := filepath.Join(userHome, ".bashrc")
		if _, err := os.Stat(bashrc); err == nil {
			return Shell{Name: "bash", RCFile: bashrc}
		}
		return Shell{Name: "bash", RCFile: filepath.Join(userHome, ".bash_profile")}
	default:
		return Shell{Name: "unknown"}
	}
}
