//go:build integration

package git

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func initRepo(t *testing.T, remotes map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		c := exec.Command("git", args...)
		c.Dir = dir
		if out, err := c.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	run("init")
	for name, url := range remotes {
		run("remote", "add", name, url)
	}
	return dir
}

func TestCheckGit_Available(t *testing.T) {
	t.Parallel()
	if err := CheckGit(); err != nil {
		t.Fatalf("CheckGit() = %v, want nil (git should be in PATH)", err)
	}
}

func TestErrGitNotFound_Sentinel(t *testing.T) {
	t.Parallel()
	if !errors.Is(ErrGitNotFound, ErrGitNotFound) {
		t.Error("ErrGitNotFound should match itself with errors.Is")
	}
}

func TestRemoteDetector_Detect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	dir := initRepo(t, map[string]string{
		"origin":   "https://github.com/acme/widget.git",
		"upstream": "git@gitlab.com:acme/widget.git",
	})

	t.Run("default remote", func(t *testing.T) {
		t.Parallel()
		got, ok := RemoteDetector{}.Detect(ctx, dir)
		if !ok || got != "https://github.com/acme/widget.git" {
			t.Errorf("Detect = (%q, %v), want origin URL", got, ok)
		}
	})

	t.Run("named remote", func(t *testing.T) {
		t.Parallel()
		got, ok := RemoteDetector{Remote: "upstream"}.Detect(ctx, dir)
		if !ok || got != "git@gitlab.com:acme/widget.git" {
			t.Errorf("Detect = (%q, %v), want upstream URL", got, ok)
		}
	})

	t.Run("missing remote", func(t *testing.T) {
		t.Parallel()
		if got, ok := (RemoteDetector{Remote: "fork"}).Detect(ctx, dir); ok {
			t.Errorf("Detect = (%q, true), want not found", got)
		}
	})

	t.Run("not a repository", func(t *testing.T) {
		t.Parallel()
		if got, ok := (RemoteDetector{}).Detect(ctx, t.TempDir()); ok {
			t.Errorf("Detect = (%q, true), want not found", got)
		}
	})
}
