package ghq

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeGhq writes an executable shell script standing in for ghq.
func fakeGhq(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a unix shell")
	}
	path := filepath.Join(t.TempDir(), "ghq")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write fake ghq: %v", err)
	}
	return path
}

func TestRootFinder_Override(t *testing.T) {
	t.Parallel()

	f := RootFinder{Override: "/home/u/ws/", Command: "definitely-not-installed-ghq"}
	got, err := f.Root(context.Background())
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}
	if got != filepath.Clean("/home/u/ws") {
		t.Errorf("Root() = %q, want %q", got, "/home/u/ws")
	}
}

func TestRootFinder_RelativeOverride(t *testing.T) {
	t.Parallel()

	if _, err := (RootFinder{Override: "ws"}).Root(context.Background()); err == nil {
		t.Error("Root() with relative override = nil error, want error")
	}
}

func TestRootFinder_CommandMissing(t *testing.T) {
	t.Parallel()

	f := RootFinder{Command: "definitely-not-installed-ghq"}
	_, err := f.Root(context.Background())
	if !errors.Is(err, ErrGhqNotFound) {
		t.Errorf("Root() error = %v, want ErrGhqNotFound", err)
	}
}

func TestRootFinder_Command(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		script  string
		want    string
		wantErr string
	}{
		{"single root", `echo /home/u/ghq`, "/home/u/ghq", ""},
		{"primary of several roots", `printf '/home/u/ghq\n/srv/ghq\n'`, "/home/u/ghq", ""},
		{"failure carries stderr", `echo 'ghq: broken config' >&2; exit 1`, "", "ghq: broken config"},
		{"empty output", `exit 0`, "", "empty path"},
		{"relative output", `echo ghq`, "", "absolute path"},
	}

	for _, tt := range tests {
		// Sequential: exec'ing a script another goroutine just wrote can
		// fail with ETXTBSY.
		t.Run(tt.name, func(t *testing.T) {
			f := RootFinder{Command: fakeGhq(t, tt.script)}
			got, err := f.Root(context.Background())
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Root() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Root() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Root() = %q, want %q", got, tt.want)
			}
		})
	}
}
