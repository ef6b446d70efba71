package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/ghqmv/internal/config"
	"github.com/raphi011/ghqmv/internal/log"
	"github.com/raphi011/ghqmv/internal/output"
	"github.com/raphi011/ghqmv/internal/ui/styles"
)

// newRootCmd builds the command tree. The root command moves the project
// given as its only argument.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		opts    moveOptions
	)

	cmd := &cobra.Command{
		Use:   "ghqmv <path>",
		Short: "Move an existing project into the ghq root",
		Long: `ghqmv moves an existing local project into the ghq root.

The destination is <ghq root>/<host>/<owner>/<repo>, derived from the
project's git remote ("origin" by default). Use --remote to supply the
remote yourself, or --force to fall back to <ghq root>/unknown/<dir> when
the project has no remote.

Before anything is moved ghqmv refuses to:
  - move the directory containing the running ghqmv binary
  - move the ghq root itself or a directory containing it
  - move a project onto the directory it already lives in
  - overwrite an existing target

A path that collides with a subcommand name (e.g. "config") must be
written as ./config.`,
		Example: `  ghqmv ~/src/widget                              # Detect remote from origin
  ghqmv ~/src/widget -n                           # Dry run: print source and target
  ghqmv ~/src/widget -r acme/widget               # github.com/acme/widget
  ghqmv ~/src/widget -r git@gitlab.com:acme/w.git # gitlab.com/acme/w
  ghqmv ~/scratch/notes --force                   # unknown/notes when no remote
  ghqmv ~/src/widget --copy                       # Copy target path to clipboard`,
		Args:                       cobra.ExactArgs(1),
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags are parsed now; attach the logger with the final verbosity.
			ctx := log.WithLogger(cmd.Context(), log.New(cmd.ErrOrStderr(), verbose, quiet))
			cmd.SetContext(ctx)

			if cfg := config.FromContext(ctx); cfg != nil {
				if err := styles.SetTheme(cfg.Theme); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			m := newMover(cfg, config.WorkDirFromContext(ctx))
			return runMove(ctx, m, cfg, args[0], opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Move flags
	cmd.Flags().StringVarP(&opts.Remote, "remote", "r", "", "Remote repository URL or owner/repo (default: detect from git)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Move even if the remote URL cannot be detected (uses unknown/<dir>)")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Only print source and target without moving")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the target path to the clipboard after moving")

	// Version flag
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute builds the root command and runs it with the loaded config.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghqmv: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)
	ctx = config.WithWorkDir(ctx, workDir)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd := newRootCmd()
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'ghqmv -h' for help")
		cancel()
		os.Exit(1)
	}
}
