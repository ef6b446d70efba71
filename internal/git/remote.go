package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/ghqmv/internal/log"
)

// DefaultRemote is the remote read when none is configured.
const DefaultRemote = "origin"

// GetRemoteURL returns the URL of the named remote of the repository at
// repoPath.
func GetRemoteURL(ctx context.Context, repoPath, remote string) (string, error) {
	output, err := outputGit(ctx, repoPath, "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("failed to get %s URL: %w", remote, err)
	}
	url := strings.TrimSpace(string(output))
	if url == "" {
		return "", fmt.Errorf("remote %s has no URL", remote)
	}
	return url, nil
}

// RemoteDetector reads a directory's remote URL through git.
type RemoteDetector struct {
	// Remote is the remote name. Empty means DefaultRemote.
	Remote string
}

// Detect returns the remote URL of dir. Any failure (not a repository, no
// such remote, git missing) is reported as not found and logged in verbose
// mode only.
func (d RemoteDetector) Detect(ctx context.Context, dir string) (string, bool) {
	remote := d.Remote
	if remote == "" {
		remote = DefaultRemote
	}
	url, err := GetRemoteURL(ctx, dir, remote)
	if err != nil {
		log.FromContext(ctx).Debug("remote detection failed", "dir", dir, "remote", remote, "err", err)
		return "", false
	}
	return url, true
}
