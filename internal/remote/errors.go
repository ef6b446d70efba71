package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHost is returned for a URL that parses but has no host,
	// e.g. file:///srv/repo.git.
	ErrInvalidHost = errors.New("invalid URL host")

	// ErrUnparseableRemote matches every *UnparseableError.
	ErrUnparseableRemote = errors.New("could not parse remote URL")

	// ErrPathTraversal matches every *TraversalError.
	ErrPathTraversal = errors.New("remote path escapes the workspace root")
)

// UnparseableError reports a remote that matched none of the known forms.
type UnparseableError struct {
	Remote string
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("could not parse remote URL: %s", e.Remote)
}

func (e *UnparseableError) Is(target error) bool {
	return target == ErrUnparseableRemote
}

// TraversalError reports a remote whose path contains "." or "..".
type TraversalError struct {
	Remote  string
	Segment string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("remote %q contains path segment %q", e.Remote, e.Segment)
}

func (e *TraversalError) Is(target error) bool {
	return target == ErrPathTraversal
}
