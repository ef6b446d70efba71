package remote

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// DefaultHost is the host shorthand remotes are placed under.
const DefaultHost = "github.com"

// FallbackPrefix marks a synthetic remote built from a directory name when
// no real remote is known.
const FallbackPrefix = "unknown/"

// Path is a resolved, workspace-relative repository location: the host
// followed by the repository path segments. It is never absolute and never
// contains "." or ".." segments.
type Path []string

// String returns the path with forward slashes, e.g. "github.com/acme/widget".
func (p Path) String() string {
	return strings.Join(p, "/")
}

// Host returns the first segment.
func (p Path) Host() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Join returns root joined with the path using the OS separator.
func (p Path) Join(root string) string {
	return filepath.Join(append([]string{root}, p...)...)
}

// Fallback returns the synthetic remote for a directory without a remote.
func Fallback(dirName string) string {
	return FallbackPrefix + dirName
}

// Resolver converts remotes to paths.
type Resolver struct {
	// DefaultHost is used for owner/repo shorthand. Empty means DefaultHost.
	DefaultHost string
}

// parseFunc is one resolution attempt. ok=false means the remote is not in
// this form and the next attempt should run.
type parseFunc func(r *Resolver, remote string) (p Path, ok bool, err error)

// attempts are tried in order; the first one that matches decides.
var attempts = []parseFunc{
	parseURL,
	parseSCP,
	parseShorthand,
	parseFallback,
}

// Resolve maps remote to a workspace-relative path using the default host.
func Resolve(remote string) (Path, error) {
	return (&Resolver{}).Resolve(remote)
}

// Resolve maps remote to a workspace-relative path.
func (r *Resolver) Resolve(remote string) (Path, error) {
	for _, attempt := range attempts {
		p, ok, err := attempt(r, remote)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
	return nil, &UnparseableError{Remote: remote}
}

func (r *Resolver) defaultHost() string {
	if r.DefaultHost != "" {
		return r.DefaultHost
	}
	return DefaultHost
}

// parseURL handles scheme://host/path remotes. A URL with a scheme but no
// host, including opaque ones like "mailto:x", is invalid. user@host:path
// does not parse as a URL and is left to parseSCP.
func parseURL(_ *Resolver, remote string) (Path, bool, error) {
	u, err := url.Parse(remote)
	if err != nil || u.Scheme == "" {
		return nil, false, nil
	}
	host := u.Hostname()
	if u.Opaque != "" || host == "" {
		return nil, true, fmt.Errorf("%w: %s", ErrInvalidHost, remote)
	}
	p, err := repoPath(remote, host, u.Path)
	return p, true, err
}

// scpPattern matches [user@]host:path as printed by git for SSH remotes.
var scpPattern = regexp.MustCompile(`^(?:[^@/:]+@)?([^@/:]+):(.+)$`)

func parseSCP(_ *Resolver, remote string) (Path, bool, error) {
	m := scpPattern.FindStringSubmatch(remote)
	if m == nil || strings.HasPrefix(m[2], "//") {
		return nil, false, nil
	}
	p, err := repoPath(remote, m[1], m[2])
	return p, true, err
}

// shorthandPattern matches owner/repo with an optional known host prefix.
var shorthandPattern = regexp.MustCompile(`^(?:(?:github\.com|gitlab\.com)/)?([^/]+)/([^/]+)$`)

// parseShorthand always places the repository under the default host,
// whichever known host prefix was given.
func parseShorthand(r *Resolver, remote string) (Path, bool, error) {
	if strings.HasPrefix(remote, FallbackPrefix) {
		return nil, false, nil
	}
	m := shorthandPattern.FindStringSubmatch(remote)
	if m == nil {
		return nil, false, nil
	}
	p := Path{r.defaultHost(), m[1], m[2]}
	if err := checkSegments(remote, p); err != nil {
		return nil, true, err
	}
	return p, true, nil
}

// parseFallback passes unknown/<name> through unchanged. Identifiers with
// empty segments are not fallbacks.
func parseFallback(_ *Resolver, remote string) (Path, bool, error) {
	if !strings.HasPrefix(remote, FallbackPrefix) {
		return nil, false, nil
	}
	p := Path(strings.Split(remote, "/"))
	if slices.Contains(p, "") {
		return nil, false, nil
	}
	if err := checkSegments(remote, p); err != nil {
		return nil, true, err
	}
	return p, true, nil
}

// repoPath builds host + path segments, dropping one leading and trailing
// slash and a single ".git" suffix.
func repoPath(remote, host, rawPath string) (Path, error) {
	rawPath = strings.TrimPrefix(rawPath, "/")
	rawPath = strings.TrimSuffix(rawPath, "/")
	rawPath = strings.TrimSuffix(rawPath, ".git")

	p := append(Path{host}, splitSegments(rawPath)...)
	if err := checkSegments(remote, p); err != nil {
		return nil, err
	}
	return p, nil
}

func splitSegments(s string) Path {
	var p Path
	for _, seg := range strings.Split(s, "/") {
		if seg != "" {
			p = append(p, seg)
		}
	}
	return p
}

func checkSegments(remote string, p Path) error {
	for _, seg := range p {
		if seg == "." || seg == ".." || strings.ContainsRune(seg, filepath.Separator) {
			return &TraversalError{Remote: remote, Segment: seg}
		}
	}
	return nil
}
