// Package config resolves where the notes home lives and reads/writes the
// optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvHome overrides every other source of the notes home.
	EnvHome = "YODA_HOME"
	// DefaultHomeDir is the notes home under the user's home directory.
	DefaultHomeDir = "yoda-home"
	// FileDir is the directory name under XDG_CONFIG_HOME.
	FileDir = "yoda"
	// FileName is the config file name.
	FileName = "config.yml"
)

// Source tells where the notes home was resolved from.
type Source string

const (
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// Config is the resolved configuration, built once at process start.
type Config struct {
	Home     string
	Ignore   []string
	Source   Source
	FilePath string // config file that was consulted, may not exist
}

// File is the on-disk shape of config.yml.
type File struct {
	Home   string   `yaml:"home,omitempty"`
	Ignore []string `yaml:"ignore,omitempty"`
}

// ErrNoUserHome is returned when no default notes home can be derived.
var ErrNoUserHome = errors.New("cannot determine user home directory")

// LoadDotEnv loads .env from the working directory (or the given files)
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return nil
		}
	}
	return godotenv.Load(filenames...)
}

// Load resolves the notes home: $YODA_HOME first, then "home" in the config
// file, then ~/yoda-home.
func Load() (*Config, error) {
	path := Path()

	file, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		FilePath: path,
		Ignore:   file.Ignore,
	}

	if home := os.Getenv(EnvHome); home != "" {
		cfg.Home = ExpandTilde(home)
		cfg.Source = SourceEnv
		return cfg, nil
	}

	if file.Home != "" {
		cfg.Home = ExpandTilde(file.Home)
		cfg.Source = SourceFile
		return cfg, nil
	}

	home, err := DefaultHome()
	if err != nil {
		return nil, err
	}
	cfg.Home = home
	cfg.Source = SourceDefault
	return cfg, nil
}

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/yoda/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, FileDir, FileName)
}

// DefaultHome returns ~/yoda-home.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoUserHome
	}
	return filepath.Join(home, DefaultHomeDir), nil
}

// ReadFile parses the config file at path.
// Returns an empty File (not an error) if the file doesn't exist.
func ReadFile(path string) (File, error) {
	if path == "" {
		return File{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading config: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return file, nil
}

// Save writes file to path, creating the parent directory.
func Save(path string, file File) error {
	if path == "" {
		return ErrNoUserHome
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return replaceFile(path, data, 0644)
}

// ExpandTilde replaces a leading "~" with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
