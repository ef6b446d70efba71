// Package remote maps git remote identifiers to workspace-relative paths.
//
// [Resolve] turns a remote into a [Path] of segments laid out the way ghq
// lays out repositories: host first, then the repository path.
//
// Accepted forms, tried in order (first match wins):
//
//   - Absolute URL: https://github.com/acme/widget.git -> github.com/acme/widget
//   - SCP-like SSH: git@github.com:acme/widget.git -> github.com/acme/widget
//   - Shorthand: acme/widget, github.com/acme/widget or gitlab.com/acme/widget
//     -> github.com/acme/widget (always the default host)
//   - Fallback: unknown/<name> passes through unchanged
//
// Anything else fails with an [*UnparseableError]. Paths containing "." or
// ".." segments are rejected with a [*TraversalError] so a hostile remote
// cannot place a directory outside the workspace root.
package remote
