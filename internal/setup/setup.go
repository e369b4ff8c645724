// Package setup implements the first-run flow: choose a notes home, create
// it, remember it and optionally export YODA_HOME from the shell config.
package setup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/yoda/internal/config"
	"github.com/aretw0/yoda/internal/platform"
)

// Marker identifies the block setup appends to a shell config file.
const Marker = "# Yoda CLI"

// Handler runs setup against explicit inputs so it can be driven by tests.
type Handler struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool // In is a terminal; otherwise no prompts are shown
	AssumeYes   bool // accept the shell config edit without asking
	UserHome    string
	Shell       string // value of $SHELL
	ConfigPath  string
	Logger      *slog.Logger
}

// Options are answers given up front, e.g. from flags.
type Options struct {
	Home string // skip the notes home prompt when set
}

// Result summarizes what setup did.
type Result struct {
	Home          string
	ConfigSaved   bool
	ShellRC       string
	ShellModified bool
}

// Run performs setup.
func (h *Handler) Run(opts Options) (Result, error) {
	var res Result
	in := bufio.NewReader(h.In)
	logger := h.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fmt.Fprintln(h.Out, "=== Yoda Setup ===")
	fmt.Fprintln(h.Out)

	defaultHome := filepath.Join(h.UserHome, config.DefaultHomeDir)

	notesDir := opts.Home
	if notesDir == "" && h.Interactive {
		answer, err := h.ask(in, fmt.Sprintf("Where should yoda store your notes? [%s]: ", defaultHome))
		if err != nil {
			return res, err
		}
		notesDir = answer
	}
	if notesDir == "" {
		notesDir = defaultHome
	}

	notesPath, err := filepath.Abs(config.ExpandTilde(notesDir))
	if err != nil {
		return res, fmt.Errorf("could not resolve %s: %w", notesDir, err)
	}
	res.Home = notesPath

	// The store never creates the notes home; setup is the one place that does.
	if _, err := platform.Init(notesPath, platform.WithMustExist(false), platform.WithLogger(logger)); err != nil {
		return res, fmt.Errorf("could not create %s: %w", notesPath, err)
	}
	fmt.Fprintf(h.Out, "✓ Created %s\n", notesPath)

	nonDefault := notesPath != defaultHome

	saved, err := h.saveConfig(notesPath, nonDefault)
	if err != nil {
		return res, err
	}
	res.ConfigSaved = saved
	if saved {
		fmt.Fprintf(h.Out, "✓ Saved %s\n", h.ConfigPath)
	}

	if nonDefault {
		rc, modified, err := h.configureShell(in, notesPath)
		res.ShellRC = rc
		res.ShellModified = modified
		if err != nil {
			return res, err
		}
	}

	fmt.Fprintln(h.Out)
	fmt.Fprintln(h.Out, "=== Setup Complete ===")
	fmt.Fprintln(h.Out)
	fmt.Fprintln(h.Out, "Start using yoda:")
	fmt.Fprintln(h.Out, `  yo add "My first note"`)
	fmt.Fprintln(h.Out, `  yo search "note"`)
	fmt.Fprintln(h.Out, "  yo today")

	logger.Debug("setup finished", "home", notesPath, "config_saved", saved, "shell_rc", res.ShellRC)
	return res, nil
}

// saveConfig records a non-default home in the config file and clears a
// stale one. Other settings in the file are kept.
func (h *Handler) saveConfig(notesPath string, nonDefault bool) (bool, error) {
	if h.ConfigPath == "" {
		return false, nil
	}

	file, err := config.ReadFile(h.ConfigPath)
	if err != nil {
		return false, err
	}

	want := ""
	if nonDefault {
		want = notesPath
	}
	if file.Home == want {
		return false, nil
	}

	file.Home = want
	if err := config.Save(h.ConfigPath, file); err != nil {
		return false, fmt.Errorf("could not save %s: %w", h.ConfigPath, err)
	}
	return true, nil
}

// configureShell proposes exporting YODA_HOME and appends it to the shell
// config when accepted. It returns the config file and whether it changed.
func (h *Handler) configureShell(in *bufio.Reader, notesPath string) (string, bool, error) {
	shell := DetectShell(h.Shell, h.UserHome)

	lines := []string{
		Marker,
		fmt.Sprintf("export %s=%q", config.EnvHome, notesPath),
	}

	fmt.Fprintln(h.Out)
	fmt.Fprintln(h.Out, "=== Shell Configuration ===")
	fmt.Fprintln(h.Out)
	fmt.Fprintf(h.Out, "Detected: %s (%s)\n\n", shell.Name, displayRC(shell.RCFile))
	fmt.Fprintln(h.Out, "To expose the notes home to other tools, add these lines to your shell config:")
	fmt.Fprintln(h.Out)
	for _, line := range lines {
		fmt.Fprintf(h.Out, "  %s\n", line)
	}
	fmt.Fprintln(h.Out)

	if shell.RCFile == "" {
		fmt.Fprintln(h.Out, "Could not detect shell config file. Please add the lines manually.")
		return "", false, nil
	}

	content, err := os.ReadFile(shell.RCFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return shell.RCFile, false, fmt.Errorf("could not read %s: %w", shell.RCFile, err)
		}
		fmt.Fprintln(h.Out, "Could not detect shell config file. Please add the lines manually.")
		return shell.RCFile, false, nil
	}

	if strings.Contains(string(content), Marker) {
		fmt.Fprintln(h.Out, "⚠️  Looks like yoda is already configured in your shell config.")
		fmt.Fprintln(h.Out, "   Skipping automatic configuration to avoid duplicates.")
		return shell.RCFile, false, nil
	}

	accept := h.AssumeYes
	if !accept && h.Interactive {
		answer, err := h.ask(in, "Add automatically? [y/N]: ")
		if err != nil {
			return shell.RCFile, false, err
		}
		accept = strings.ToLower(answer) == "y"
	}
	if !accept {
		fmt.Fprintln(h.Out, "Please add the lines manually to your shell config.")
		return shell.RCFile, false, nil
	}

	if err := appendLines(shell.RCFile, lines); err != nil {
		return shell.RCFile, false, fmt.Errorf("could not update %s: %w", shell.RCFile, err)
	}

	fmt.Fprintf(h.Out, "✓ Updated %s\n\n", shell.RCFile)
	fmt.Fprintln(h.Out, "⚠️  Reload your shell to activate:")
	fmt.Fprintf(h.Out, "  source %s\n", shell.RCFile)
	return shell.RCFile, true, nil
}

// ask prints prompt and returns the trimmed answer. EOF counts as an empty answer.
func (h *Handler) ask(in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(h.Out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func appendLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	block := "\n" + strings.Join(lines, "\n") + "\n"
	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func displayRC(path string) string {
	if path == "" {
		return "none"
	}
	return path
}
