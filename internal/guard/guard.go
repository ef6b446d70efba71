// Package guard holds the safety checks run before a project is moved.
//
// Every check compares canonical paths (absolute, symlinks resolved). When
// either side cannot be canonicalized, typically because it does not exist
// yet, the check passes: the guard only blocks on what it can prove.
package guard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies which check failed.
type Kind int

const (
	// KindExecutableInPath: the running binary lives inside the source, or
	// the source lives inside the binary's directory.
	KindExecutableInPath Kind = iota + 1
	// KindRootConflict: the source is the workspace root or contains it.
	KindRootConflict
	// KindSameLocation: the source already is the target's parent.
	KindSameLocation
)

func (k Kind) String() string {
	switch k {
	case KindExecutableInPath:
		return "executable in path"
	case KindRootConflict:
		return "root conflict"
	case KindSameLocation:
		return "same location"
	}
	return "unknown"
}

// ConflictError is returned by the checks.
type ConflictError struct {
	Kind   Kind
	Source string // path as given by the caller
	Other  string // executable dir, root or target
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case KindExecutableInPath:
		return fmt.Sprintf("cannot move %s: it overlaps with the directory of the running executable (%s); run ghqmv from a different location", e.Source, e.Other)
	case KindRootConflict:
		return fmt.Sprintf("cannot move %s: it is the ghq root or contains it (%s)", e.Source, e.Other)
	case KindSameLocation:
		return fmt.Sprintf("source and target directories are the same: %s", e.Source)
	}
	return fmt.Sprintf("conflict moving %s", e.Source)
}

// Is matches another *ConflictError of the same kind, so callers can test
// errors.Is(err, &guard.ConflictError{Kind: guard.KindRootConflict}).
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	return ok && t.Kind == e.Kind
}

// Canonicalize returns the absolute, symlink-free form of path.
// ok is false when that is not possible (e.g. the path does not exist).
func Canonicalize(path string) (canonical string, ok bool) {
	if path == "" {
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// ExecutableDir returns the directory of the running binary.
func ExecutableDir() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	return filepath.Dir(exe), true
}

// CheckExecutable fails when exeDir and source are the same directory or
// one contains the other.
func CheckExecutable(exeDir, source string) error {
	exe, ok1 := Canonicalize(exeDir)
	src, ok2 := Canonicalize(source)
	if !ok1 || !ok2 {
		return nil
	}
	if within(exe, src) || within(src, exe) {
		return &ConflictError{Kind: KindExecutableInPath, Source: source, Other: exeDir}
	}
	return nil
}

// CheckRoot fails when source is the workspace root or contains it.
// A source below the root passes: it is re-homed within the same root.
func CheckRoot(source, root string) error {
	src, ok1 := Canonicalize(source)
	rt, ok2 := Canonicalize(root)
	if !ok1 || !ok2 {
		return nil
	}
	if within(rt, src) {
		return &ConflictError{Kind: KindRootConflict, Source: source, Other: root}
	}
	return nil
}

// CheckTarget fails when source is the parent of target (or target itself
// when it has no parent), i.e. the move would not change anything.
func CheckTarget(source, target string) error {
	src, ok := Canonicalize(source)
	if !ok {
		return nil
	}
	tgt, ok := targetParent(target)
	if !ok {
		return nil
	}
	if src == tgt {
		return &ConflictError{Kind: KindSameLocation, Source: source, Other: target}
	}
	return nil
}

func targetParent(target string) (string, bool) {
	parent := filepath.Dir(filepath.Clean(target))
	if parent != filepath.Clean(target) {
		if p, ok := Canonicalize(parent); ok {
			return p, true
		}
	}
	return Canonicalize(target)
}

// within reports whether path equals dir or lies below it, comparing whole
// path segments.
func within(path, dir string) bool {
	if path == dir {
		return true
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
