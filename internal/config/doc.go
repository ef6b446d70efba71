// Package config handles loading and validation of ghqmv configuration.
//
// Configuration is read from ~/.config/ghqmv/config.toml with environment
// variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - GHQMV_ROOT env var: workspace root
//   - GHQMV_REMOTE env var: git remote used for detection
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - root: workspace root override (must be absolute or ~/...); when empty
//     the root comes from "ghq root"
//   - ghq_command: command used for root discovery (default: "ghq")
//   - remote: git remote name (default: "origin")
//   - default_host: host for owner/repo shorthand (default: "github.com")
//   - confirm: prompt before moving when running in a terminal
//   - theme: "default", "nord" or "none"
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
