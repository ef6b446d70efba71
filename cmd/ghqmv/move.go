package main

import (
	"context"
	"errors"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/ghqmv/internal/config"
	"github.com/raphi011/ghqmv/internal/ghq"
	"github.com/raphi011/ghqmv/internal/git"
	"github.com/raphi011/ghqmv/internal/log"
	"github.com/raphi011/ghqmv/internal/output"
	"github.com/raphi011/ghqmv/internal/relocate"
	"github.com/raphi011/ghqmv/internal/remote"
	"github.com/raphi011/ghqmv/internal/ui/prompt"
)

// ErrAborted is returned when the user declines the confirmation prompt.
var ErrAborted = errors.New("aborted")

type moveOptions struct {
	Remote string
	Force  bool
	DryRun bool
	Yes    bool
	Copy   bool
}

// Replaced in tests.
var (
	confirmMove     = prompt.Confirm
	writeClipboard  = clipboard.WriteAll
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// newMover wires the git, ghq and resolver collaborators from cfg.
func newMover(cfg *config.Config, workDir string) *relocate.Mover {
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	return &relocate.Mover{
		Detector: git.RemoteDetector{Remote: cfg.Remote},
		Roots:    ghq.RootFinder{Override: cfg.Root, Command: cfg.GhqCommand},
		Resolver: &remote.Resolver{DefaultHost: cfg.DefaultHost},
		FS:       relocate.OSFS{},
		WorkDir:  workDir,
	}
}

func runMove(ctx context.Context, m *relocate.Mover, cfg *config.Config, path string, opts moveOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	plan, err := m.Plan(ctx, relocate.Options{
		Path:   path,
		Remote: opts.Remote,
		Force:  opts.Force,
	})
	if err != nil {
		return err
	}

	out.Field("Source path", plan.Source)
	out.Field("Target path", plan.Target)

	if opts.DryRun {
		out.Println("Dry run - not moving files.")
		return nil
	}

	if cfg != nil && cfg.Confirm && !opts.Yes && stdinIsTerminal() {
		result, err := confirmMove("Move project?")
		if err != nil {
			return err
		}
		if !result.Confirmed {
			return ErrAborted
		}
	}

	if err := m.Execute(ctx, plan); err != nil {
		return err
	}

	out.Success("Successfully moved project to ghq management: %s", plan.Target)

	if opts.Copy {
		if err := writeClipboard(plan.Target); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	return nil
}
