package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempSymlink creates a symlink in a temporary directory pointing at target
// and returns its path. The test is skipped when symlinks are unavailable.
func TempSymlink(t *testing.T, target string) string {
	t.Helper()
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	return link
}

// LongTarget returns a relative path of exactly n bytes made of repeated
// directory names. It never ends in a separator and never needs to exist.
func LongTarget(n int) string {
	const segment = "abcdefghijklmnopqrstuvwxyz0123456789/"
	b := []byte(strings.Repeat(segment, n/len(segment)+1)[:n])
	if n > 0 && b[n-1] == '/' {
		b[n-1] = 'x'
	}
	return string(b)
}

// TempFile creates an empty file in a temporary directory and returns its path.
func TempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	return path
}
