// Package ghq locates the workspace root that repositories are moved into.
//
// The root comes from an explicit override (config "root" or GHQMV_ROOT)
// or from running "ghq root", which honours the user's ghq.root git config.
package ghq

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/raphi011/ghqmv/internal/cmd"
)

// DefaultCommand is the ghq binary name.
const DefaultCommand = "ghq"

// ErrGhqNotFound indicates the ghq command is not installed or not in PATH.
var ErrGhqNotFound = errors.New("ghq not found: install ghq (https://github.com/x-motemen/ghq) or set root in the config")

// RootFinder resolves the workspace root.
type RootFinder struct {
	// Override is used verbatim when set.
	Override string
	// Command is the ghq binary. Empty means DefaultCommand.
	Command string
}

func (f RootFinder) command() string {
	if f.Command != "" {
		return f.Command
	}
	return DefaultCommand
}

// Check verifies the ghq command is available. It is a no-op when an
// override is set.
func (f RootFinder) Check() error {
	if f.Override != "" {
		return nil
	}
	if _, err := exec.LookPath(f.command()); err != nil {
		return fmt.Errorf("%w (%s)", ErrGhqNotFound, f.command())
	}
	return nil
}

// Root returns the absolute workspace root. When several roots are
// configured, ghq prints the primary one first.
func (f RootFinder) Root(ctx context.Context) (string, error) {
	if f.Override != "" {
		return absRoot(f.Override)
	}
	if err := f.Check(); err != nil {
		return "", err
	}

	out, err := cmd.OutputContext(ctx, "", f.command(), "root")
	if err != nil {
		return "", fmt.Errorf("%s root command failed: %w", f.command(), err)
	}
	root, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	root = strings.TrimSpace(root)
	if root == "" {
		return "", fmt.Errorf("%s root returned an empty path", f.command())
	}
	return absRoot(root)
}

func absRoot(root string) (string, error) {
	if !filepath.IsAbs(root) {
		return "", fmt.Errorf("ghq root must be an absolute path, got %q", root)
	}
	return filepath.Clean(root), nil
}
