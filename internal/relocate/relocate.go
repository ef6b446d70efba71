package relocate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raphi011/ghqmv/internal/guard"
	"github.com/raphi011/ghqmv/internal/log"
	"github.com/raphi011/ghqmv/internal/remote"
)

var (
	// ErrSourceNotFound is returned when the project path does not exist.
	ErrSourceNotFound = errors.New("project path does not exist")

	// ErrNotDirectory is returned when the project path is not a directory.
	ErrNotDirectory = errors.New("project path is not a directory")

	// ErrNoRemote is returned when no remote was given, none could be
	// detected and force is off.
	ErrNoRemote = errors.New("could not detect Git remote URL; use --remote or --force to override")

	// ErrTargetExists is returned when the target directory already exists.
	ErrTargetExists = errors.New("target path already exists")
)

// RemoteDetector reads the remote URL of a directory.
type RemoteDetector interface {
	Detect(ctx context.Context, dir string) (url string, ok bool)
}

// RootFinder returns the absolute workspace root.
type RootFinder interface {
	Root(ctx context.Context) (string, error)
}

// Filesystem is the subset of the os package a move needs.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
}

// OSFS implements Filesystem with the os package.
type OSFS struct{}

func (OSFS) Stat(name string) (fs.FileInfo, error)        { return os.Stat(name) }
func (OSFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }
func (OSFS) Rename(oldpath, newpath string) error         { return os.Rename(oldpath, newpath) }

// RemoteSource records where the remote of a plan came from.
type RemoteSource int

const (
	RemoteExplicit RemoteSource = iota + 1
	RemoteDetected
	RemoteFallback
)

func (s RemoteSource) String() string {
	switch s {
	case RemoteExplicit:
		return "explicit"
	case RemoteDetected:
		return "detected"
	case RemoteFallback:
		return "fallback"
	}
	return "unknown"
}

// Options are the inputs of a move.
type Options struct {
	Path   string // project path, absolute or relative to the working directory
	Remote string // explicit remote; empty = detect
	Force  bool   // allow the unknown/<dir> fallback
}

// Plan is a validated move.
type Plan struct {
	Source       string // absolute, as given (not canonicalized)
	Target       string // Root joined with Resolved
	Root         string
	Remote       string
	RemoteSource RemoteSource
	Resolved     remote.Path
}

// Mover plans and executes moves.
type Mover struct {
	Detector RemoteDetector
	Roots    RootFinder
	Resolver *remote.Resolver
	FS       Filesystem

	// WorkDir resolves relative project paths. Empty means os.Getwd.
	WorkDir string

	// ExecutableDir returns the running binary's directory.
	// Nil means guard.ExecutableDir.
	ExecutableDir func() (string, bool)
}

// Plan validates a move and computes its target. It does not modify the
// filesystem.
func (m *Mover) Plan(ctx context.Context, opts Options) (*Plan, error) {
	l := log.FromContext(ctx)

	source, err := m.absSource(opts.Path)
	if err != nil {
		return nil, err
	}
	info, err := m.fs().Stat(source)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	} else if err != nil {
		return nil, fmt.Errorf("failed to check project path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, source)
	}

	if exeDir, ok := m.executableDir(); ok {
		if err := guard.CheckExecutable(exeDir, source); err != nil {
			return nil, err
		}
	}

	url, src, err := m.acquireRemote(ctx, source, opts)
	if err != nil {
		return nil, err
	}
	if src == RemoteFallback {
		l.Printf("Warning: Could not detect Git remote URL. Using project directory name.\n")
	}

	root, err := m.Roots.Root(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ghq root: %w", err)
	}
	if err := guard.CheckRoot(source, root); err != nil {
		return nil, err
	}

	resolved, err := m.resolver().Resolve(url)
	if err != nil {
		return nil, err
	}
	target := resolved.Join(root)
	l.Debug("resolved target", "remote", url, "source", src, "path", resolved.String())

	if err := guard.CheckTarget(source, target); err != nil {
		return nil, err
	}

	return &Plan{
		Source:       source,
		Target:       target,
		Root:         root,
		Remote:       url,
		RemoteSource: src,
		Resolved:     resolved,
	}, nil
}

// Execute performs a planned move.
func (m *Mover) Execute(ctx context.Context, p *Plan) error {
	l := log.FromContext(ctx)
	fsys := m.fs()

	parent := filepath.Dir(p.Target)
	l.Debug("creating parent directory", "path", parent)
	if err := fsys.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("failed to create target directory %s: %w", parent, err)
	}

	if _, err := fsys.Stat(p.Target); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, p.Target)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check target path: %w", err)
	}

	l.Debug("renaming", "from", p.Source, "to", p.Target)
	if err := fsys.Rename(p.Source, p.Target); err != nil {
		return fmt.Errorf("failed to move project: %w", err)
	}
	return nil
}

// acquireRemote applies explicit > detected > fallback (force only).
func (m *Mover) acquireRemote(ctx context.Context, source string, opts Options) (string, RemoteSource, error) {
	if opts.Remote != "" {
		return opts.Remote, RemoteExplicit, nil
	}
	if m.Detector != nil {
		if url, ok := m.Detector.Detect(ctx, source); ok {
			return url, RemoteDetected, nil
		}
	}
	if opts.Force {
		return remote.Fallback(filepath.Base(source)), RemoteFallback, nil
	}
	return "", 0, ErrNoRemote
}

func (m *Mover) absSource(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrSourceNotFound)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd := m.WorkDir
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	return filepath.Join(wd, path), nil
}

func (m *Mover) fs() Filesystem {
	if m.FS != nil {
		return m.FS
	}
	return OSFS{}
}

func (m *Mover) resolver() *remote.Resolver {
	if m.Resolver != nil {
		return m.Resolver
	}
	return &remote.Resolver{}
}

func (m *Mover) executableDir() (string, bool) {
	if m.ExecutableDir != nil {
		return m.ExecutableDir()
	}
	return guard.ExecutableDir()
}
