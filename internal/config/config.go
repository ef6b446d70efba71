package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the ghqmv configuration
type Config struct {
	Root        string `toml:"root"`         // workspace root override; empty = ask ghq
	GhqCommand  string `toml:"ghq_command"`  // command used for "<cmd> root"
	Remote      string `toml:"remote"`       // git remote read for detection
	DefaultHost string `toml:"default_host"` // host used for owner/repo shorthand
	Confirm     bool   `toml:"confirm"`      // ask before moving (terminal only)
	Theme       string `toml:"theme"`        // output theme name
}

// Defaults
const (
	DefaultGhqCommand  = "ghq"
	DefaultRemote      = "origin"
	DefaultHost        = "github.com"
	DefaultThemeName   = "default"
	EnvRoot            = "GHQMV_ROOT"
	EnvRemote          = "GHQMV_REMOTE"
	configDirName      = "ghqmv"
	configFileName     = "config.toml"
	defaultDirPerm     = 0o755
	defaultConfigPerms = 0o644
)

// Default returns the default configuration
func Default() Config {
	return Config{
		GhqCommand:  DefaultGhqCommand,
		Remote:      DefaultRemote,
		DefaultHost: DefaultHost,
		Theme:       DefaultThemeName,
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // not configured
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file (~/.config/ghqmv/config.toml)
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", configDirName, configFileName), nil
}

// Load reads config from ~/.config/ghqmv/config.toml and applies
// environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		path = "" // no home directory: defaults plus env
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path. See Load.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Default(), err
	}
	if err := normalize(&cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnvOverrides applies GHQMV_* environment variables. Empty values
// are ignored.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvRoot); v != "" {
		if err := ValidatePath(v, EnvRoot); err != nil {
			return err
		}
		cfg.Root = v
	}
	if v := os.Getenv(EnvRemote); v != "" {
		cfg.Remote = v
	}
	return nil
}

// normalize fills empty fields with defaults, validates and expands ~.
func normalize(cfg *Config) error {
	if cfg.GhqCommand == "" {
		cfg.GhqCommand = DefaultGhqCommand
	}
	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}
	if cfg.DefaultHost == "" {
		cfg.DefaultHost = DefaultHost
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultThemeName
	}

	if err := ValidatePath(cfg.Root, "root"); err != nil {
		return err
	}
	if err := validateHost(cfg.DefaultHost); err != nil {
		return err
	}
	if err := validateEnum(cfg.Theme, "theme", ValidThemes); err != nil {
		return err
	}
	if strings.ContainsAny(cfg.Remote, " \t/") {
		return fmt.Errorf("invalid remote %q: must be a plain remote name", cfg.Remote)
	}

	root, err := expandPath(cfg.Root)
	if err != nil {
		return fmt.Errorf("expand root: %w", err)
	}
	cfg.Root = root
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DefaultConfig returns the commented default config file content.
func DefaultConfig() string {
	return defaultConfig
}

const defaultConfig = `# ghqmv configuration
#
# ghqmv moves a local project into the ghq root, at
# <root>/<host>/<owner>/<repo>, derived from the project's git remote.

# Workspace root. When empty, ghqmv runs "<ghq_command> root".
# Must be absolute or start with ~. The GHQMV_ROOT env var overrides it.
# root = "~/ghq"

# Command used to discover the workspace root
ghq_command = "ghq"

# Git remote used to detect the project's URL (GHQMV_REMOTE overrides it)
remote = "origin"

# Host used for "owner/repo" shorthand remotes
default_host = "github.com"

# Ask for confirmation before moving (only when stdin is a terminal,
# skipped with --yes)
confirm = false

# Output theme: "default", "nord" or "none"
theme = "default"
`

// Init writes the default config file to path.
// If force is true, overwrites an existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), defaultConfigPerms)
}
