package remote

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		remote string
		want   string
	}{
		// Absolute URLs
		{"https with .git", "https://github.com/acme/widget.git", "github.com/acme/widget"},
		{"https without .git", "https://github.com/acme/widget", "github.com/acme/widget"},
		{"https trailing slash", "https://github.com/acme/widget/", "github.com/acme/widget"},
		{"ssh with port", "ssh://git@gitlab.internal.corp:2222/org/repo.git", "gitlab.internal.corp/org/repo"},
		{"nested groups", "https://gitlab.com/group/sub/repo.git", "gitlab.com/group/sub/repo"},
		{".git stripped once", "https://github.com/acme/widget.git.git", "github.com/acme/widget.git"},
		{".git only as suffix", "https://github.com/acme/widget.gitx", "github.com/acme/widget.gitx"},
		{"host only", "https://example.com", "example.com"},

		// SCP-like SSH
		{"scp with user", "git@github.com:acme/widget.git", "github.com/acme/widget"},
		{"scp absolute path", "git@example.com:/srv/repos/widget.git", "example.com/srv/repos/widget"},

		// Shorthand
		{"owner/repo", "acme/widget", "github.com/acme/widget"},
		{"github prefix", "github.com/acme/widget", "github.com/acme/widget"},
		{"gitlab prefix lands on github", "gitlab.com/acme/widget", "github.com/acme/widget"},
		{"shorthand keeps .git", "acme/widget.git", "github.com/acme/widget.git"},
		{"owner named like prefix host", "github.com/unknown/widget", "github.com/unknown/widget"},

		// Fallback
		{"fallback", "unknown/my-project", "unknown/my-project"},
		{"fallback keeps dots in name", "unknown/my.project.git", "unknown/my.project.git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.remote)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.remote, err)
			}
			if got.String() != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.remote, got.String(), tt.want)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		remote string
		want   error
	}{
		{"file URL has no host", "file:///srv/repos/widget.git", ErrInvalidHost},
		{"mailto has no host", "mailto:x", ErrInvalidHost},
		{"urn has no host", "urn:a:b", ErrInvalidHost},
		{"urn isbn", "urn:isbn:0451450523", ErrInvalidHost},
		{"news has no host", "news:comp.lang.go", ErrInvalidHost},
		{"alias without user", "myalias:acme/widget", ErrInvalidHost},
		{"three segment shorthand", "group/subgroup/repo", ErrUnparseableRemote},
		{"single word", "widget", ErrUnparseableRemote},
		{"empty", "", ErrUnparseableRemote},
		{"spaces", "not a remote", ErrUnparseableRemote},
		{"bare fallback prefix", "unknown/", ErrUnparseableRemote},
		{"fallback double slash", "unknown//x", ErrUnparseableRemote},
		{"fallback trailing slash", "unknown/x/", ErrUnparseableRemote},
		{"url traversal", "https://evil.example/../../etc", ErrPathTraversal},
		{"encoded traversal", "https://evil.example/%2e%2e/x", ErrPathTraversal},
		{"scp traversal", "git@evil.example:../x.git", ErrPathTraversal},
		{"shorthand traversal", "../widget", ErrPathTraversal},
		{"fallback traversal", "unknown/..", ErrPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.remote)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Resolve(%q) = (%q, %v), want error %v", tt.remote, got, err, tt.want)
			}
		})
	}
}

func TestResolve_UnparseableCarriesRemote(t *testing.T) {
	t.Parallel()

	_, err := Resolve("group/subgroup/repo")
	var uerr *UnparseableError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want *UnparseableError", err)
	}
	if uerr.Remote != "group/subgroup/repo" {
		t.Errorf("Remote = %q, want %q", uerr.Remote, "group/subgroup/repo")
	}
}

func TestResolver_DefaultHost(t *testing.T) {
	t.Parallel()

	r := &Resolver{DefaultHost: "git.example.org"}

	got, err := r.Resolve("acme/widget")
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}
	if got.String() != "git.example.org/acme/widget" {
		t.Errorf("Resolve = %q, want %q", got.String(), "git.example.org/acme/widget")
	}

	// Full URLs keep their own host.
	got, err = r.Resolve("https://github.com/acme/widget.git")
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}
	if got.Host() != "github.com" {
		t.Errorf("Host() = %q, want %q", got.Host(), "github.com")
	}
}

func TestPath_Join(t *testing.T) {
	t.Parallel()

	p := Path{"github.com", "acme", "widget"}
	want := filepath.Join("/home/u/ws", "github.com", "acme", "widget")
	if got := p.Join("/home/u/ws"); got != want {
		t.Errorf("Join = %q, want %q", got, want)
	}
	if filepath.IsAbs(p.String()) {
		t.Errorf("String() = %q should be relative", p.String())
	}
}

func TestFallback(t *testing.T) {
	t.Parallel()

	remote := Fallback("my-project")
	if remote != "unknown/my-project" {
		t.Fatalf("Fallback = %q, want %q", remote, "unknown/my-project")
	}
	got, err := Resolve(remote)
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v", remote, err)
	}
	if got.String() != remote {
		t.Errorf("Resolve(%q) = %q, want unchanged", remote, got.String())
	}
}
