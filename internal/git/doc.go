// Package git provides the git operations ghqmv needs via shell commands.
//
// All operations use [os/exec] (through the internal cmd package) to call
// the git CLI directly rather than using Go git libraries. This keeps remote
// resolution identical to what the user's git sees, including insteadOf
// rewrites and per-repo configuration.
//
//   - [CheckGit]: verify git is installed
//   - [GetRemoteURL]: read a remote's URL
//   - [RemoteDetector]: best-effort detection used before a move
package git
