//go:build linux || darwin

package osinfo

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/joshuapare/grobkit/grob"
	"github.com/joshuapare/grobkit/internal/testutil"
)

func TestReadlink(t *testing.T) {
	tests := []struct {
		name   string
		target string
		calls  int
	}{
		{"short", "target", 1},
		{"exactly one buffer", strings.Repeat("x", linkCapacity), 2},
		{"long", testutil.LongTarget(1000), 3},
		// 256, 512 and 1024 are all filled; the fourth buffer holds it.
		{"exactly three buffers", testutil.LongTarget(1024), 4},
		{"just past three buffers", testutil.LongTarget(1025), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := testutil.TempSymlink(t, tt.target)
			calls := 0
			got, err := Readlink(link, &Options{OnAttempt: func(int, uint32) error {
				calls++
				return nil
			}})
			require.NoError(t, err)
			require.Equal(t, tt.target, got)
			require.Equal(t, tt.calls, calls)
		})
	}
}

func TestReadlinkReleasesMemory(t *testing.T) {
	link := testutil.TempSymlink(t, testutil.LongTarget(2000))
	alloc := testutil.NewCountingAllocator()
	_, err := Readlink(link, &Options{Grob: &grob.Options{Allocator: alloc}})
	require.NoError(t, err)
	require.Zero(t, alloc.Live())
	require.Equal(t, alloc.Largest(), alloc.Peak())
}

func TestReadlinkNotLink(t *testing.T) {
	_, err := Readlink(testutil.TempFile(t), nil)
	require.ErrorIs(t, err, unix.EINVAL)

	var ce *grob.CallError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 1, ce.Attempt)

	_, err = Readlink(filepath.Join(t.TempDir(), "missing"), nil)
	require.ErrorIs(t, err, unix.ENOENT)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadlinkAttemptLimit(t *testing.T) {
	link := testutil.TempSymlink(t, testutil.LongTarget(1000))
	errLimit := errors.New("too many attempts")
	_, err := Readlink(link, &Options{OnAttempt: func(n int, _ uint32) error {
		if n > 1 {
			return errLimit
		}
		return nil
	}})
	require.ErrorIs(t, err, errLimit)
}

func TestGetwd(t *testing.T) {
	got, err := Getwd(nil)
	require.NoError(t, err)
	want, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, realPath(t, want), realPath(t, got))
}

func TestGetwdDeep(t *testing.T) {
	deep := t.TempDir()
	for i := 0; i < 8; i++ {
		deep = filepath.Join(deep, strings.Repeat(string(rune('a'+i)), 100))
	}
	require.NoError(t, os.MkdirAll(deep, 0o700))
	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(deep))
	t.Setenv("PWD", deep)
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	calls := 0
	got, err := Getwd(&Options{OnAttempt: func(int, uint32) error {
		calls++
		return nil
	}})
	require.NoError(t, err)
	require.Equal(t, realPath(t, deep), got)
	require.Greater(t, calls, 1)
}

func TestXattr(t *testing.T) {
	path := testutil.TempFile(t)
	small := []byte("small value")
	large := []byte(strings.Repeat("0123456789", 100))
	if err := unix.Setxattr(path, "user.grob.small", small, 0); err != nil {
		t.Skipf("extended attributes unsupported: %v", err)
	}
	if err := unix.Setxattr(path, "user.grob.large", large, 0); err != nil {
		t.Skipf("large extended attributes unsupported: %v", err)
	}
	require.NoError(t, unix.Setxattr(path, "user.grob.empty", nil, 0))

	got, err := Getxattr(path, "user.grob.small", nil)
	require.NoError(t, err)
	require.Equal(t, small, got)

	calls := 0
	got, err = Getxattr(path, "user.grob.large", &Options{OnAttempt: func(int, uint32) error {
		calls++
		return nil
	}})
	require.NoError(t, err)
	require.Equal(t, large, got)
	require.Equal(t, 2, calls)

	got, err = Getxattr(path, "user.grob.empty", nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	_, err = Getxattr(path, "user.grob.missing", nil)
	require.Error(t, err)
	if runtime.GOOS == "linux" {
		require.ErrorIs(t, err, unix.ENODATA)
	}

	names, err := Listxattr(path, nil)
	require.NoError(t, err)
	require.Subset(t, names, []string{"user.grob.small", "user.grob.large", "user.grob.empty"})
}

func TestSplitNames(t *testing.T) {
	require.Nil(t, splitNames(nil))
	require.Equal(t, []string{"a"}, splitNames([]byte("a\x00")))
	require.Equal(t, []string{"user.a", "user.b"}, splitNames([]byte("user.a\x00user.b\x00")))
}

func realPath(t *testing.T, p string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(p)
	require.NoError(t, err)
	return r
}
