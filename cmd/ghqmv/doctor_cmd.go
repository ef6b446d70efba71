package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/ghqmv/internal/config"
	"github.com/raphi011/ghqmv/internal/ghq"
	"github.com/raphi011/ghqmv/internal/git"
	"github.com/raphi011/ghqmv/internal/output"
	"github.com/raphi011/ghqmv/internal/ui/static"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose setup issues",
		Args:  cobra.NoArgs,
		Long: `Diagnose setup issues.

Checks:
- git is installed
- ghq is installed (unless root is configured)
- the workspace root can be determined and exists
- the config file is present`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)
			if cfg == nil {
				d := config.Default()
				cfg = &d
			}

			checks := runDoctor(ctx, cfg)
			out.Printf("%s", static.RenderChecks(checks))

			var issues int
			for _, c := range checks {
				if c.Status == static.StatusFail {
					issues++
				}
			}
			out.Println()
			if issues > 0 {
				out.Printf("Found %d issue(s)\n", issues)
				return fmt.Errorf("%d issues found", issues)
			}
			out.Println("All checks passed")
			return nil
		},
	}

	return cmd
}

// runDoctor runs the diagnostics for cfg.
func runDoctor(ctx context.Context, cfg *config.Config) []static.Check {
	var checks []static.Check

	if err := git.CheckGit(); err != nil {
		checks = append(checks, static.Check{Name: "git", Status: static.StatusFail, Detail: err.Error()})
	} else {
		checks = append(checks, static.Check{Name: "git", Status: static.StatusOK, Detail: "available"})
	}

	finder := ghq.RootFinder{Override: cfg.Root, Command: cfg.GhqCommand}
	switch {
	case cfg.Root != "":
		checks = append(checks, static.Check{Name: "ghq", Status: static.StatusOK, Detail: "not needed, root is configured"})
	default:
		if err := finder.Check(); err != nil {
			checks = append(checks, static.Check{Name: "ghq", Status: static.StatusFail, Detail: err.Error()})
		} else {
			checks = append(checks, static.Check{Name: "ghq", Status: static.StatusOK, Detail: "available"})
		}
	}

	root, err := finder.Root(ctx)
	switch {
	case err != nil:
		checks = append(checks, static.Check{Name: "ghq root", Status: static.StatusFail, Detail: err.Error()})
	default:
		if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
			checks = append(checks, static.Check{Name: "ghq root", Status: static.StatusWarn, Detail: root + " (does not exist yet)"})
		} else {
			checks = append(checks, static.Check{Name: "ghq root", Status: static.StatusOK, Detail: root})
		}
	}

	if path, err := config.Path(); err == nil {
		if _, err := os.Stat(path); err == nil {
			checks = append(checks, static.Check{Name: "config", Status: static.StatusOK, Detail: path})
		} else {
			checks = append(checks, static.Check{Name: "config", Status: static.StatusWarn, Detail: "not found, defaults in use (ghqmv config init)"})
		}
	}

	return checks
}
