//go:build linux || darwin

package osinfo

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/grobkit/grob"
	"github.com/joshuapare/grobkit/grob/strategy"
	"github.com/joshuapare/grobkit/internal/buf"
)

const (
	// linkCapacity fits most symlink targets.
	linkCapacity = 256

	// cwdCapacity fits most working directories.
	cwdCapacity = 512

	// xattrCapacity fits most attribute values and name lists.
	xattrCapacity = 256
)

// Readlink returns the target of the symbolic link at path.
//
// readlink(2) returns the number of bytes it stored and truncates silently,
// so a full buffer is treated as truncated and the buffer doubles.
func Readlink(path string, opts *Options) (string, error) {
	g := grob.New[byte](
		grob.NewFixedSize(linkCapacity),
		strategy.DoubleNibbles{Floor: linkCapacity},
		opts.grob(),
	)
	target, err := grob.Run(g, guard(opts, func(arg *grob.Argument[byte]) grob.Result {
		n, err := unix.Readlink(path, arg.Bytes())
		if err != nil {
			return grob.StoredSize(0, err)
		}
		if n == len(arg.Bytes()) {
			return grob.StoredSizeResult{Stored: uint32(n), Status: unix.ERANGE}
		}
		return grob.StoredSize(uint32(n), nil)
	}), copyString)
	if err != nil {
		return "", fmt.Errorf("failed to read link %s: %w", path, err)
	}
	return target, nil
}

// Getwd returns the current working directory.
//
// getcwd(3) fails with ERANGE without saying how much room it needs, so the
// buffer doubles until the path fits.
func Getwd(opts *Options) (string, error) {
	g := grob.New[byte](
		grob.NewFixedSize(cwdCapacity),
		strategy.DoubleNibbles{Floor: cwdCapacity},
		opts.grob(),
	)
	wd, err := grob.Run(g, guard(opts, func(arg *grob.Argument[byte]) grob.Result {
		b := arg.Bytes()
		if _, err := unix.Getcwd(b); err != nil {
			if errors.Is(err, unix.ERANGE) {
				arg.SetNeededSize(buf.SatMul32(max(arg.Size(), 1), 2))
			}
			return grob.ErrorCode(err)
		}
		// The return value is a length on Linux and a pointer on macOS;
		// the terminator is reliable on both.
		n := bytes.IndexByte(b, 0)
		if n < 0 {
			return terminal(unix.EINVAL)
		}
		arg.SetNeededSize(uint32(n))
		return grob.ErrorCode(nil)
	}), copyString)
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	// Linux reports unreachable directories with a "(unreachable)" prefix.
	if !strings.HasPrefix(wd, "/") {
		return "", fmt.Errorf("failed to get working directory: %w", unix.ENOENT)
	}
	return wd, nil
}

// Getxattr returns the value of the extended attribute name of path.
// A missing attribute is an error wrapping ENODATA on Linux and ENOATTR on
// macOS; an empty value is returned as an empty, non-nil slice.
func Getxattr(path, name string, opts *Options) ([]byte, error) {
	value, err := grob.Run(newXattrBuffer(opts), guard(opts, sized(func(dest []byte) (int, error) {
		return unix.Getxattr(path, name, dest)
	})), func(f *grob.FrozenBuffer[byte]) ([]byte, error) {
		return append([]byte{}, f.Bytes()...), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute %s of %s: %w", name, path, err)
	}
	return value, nil
}

// Listxattr returns the names of the extended attributes of path.
func Listxattr(path string, opts *Options) ([]string, error) {
	names, err := grob.Run(newXattrBuffer(opts), guard(opts, sized(func(dest []byte) (int, error) {
		return unix.Listxattr(path, dest)
	})), func(f *grob.FrozenBuffer[byte]) ([]string, error) {
		return splitNames(f.Bytes()), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attributes of %s: %w", path, err)
	}
	return names, nil
}

func newXattrBuffer(opts *Options) *grob.GrowableBuffer[byte] {
	return grob.New[byte](
		grob.NewFixedSize(xattrCapacity),
		strategy.NearestNibble{},
		opts.grob(),
	)
}

// sized adapts the xattr calls: they fail with ERANGE when dest is too
// small and return the size they need when dest is empty.
func sized(fn func(dest []byte) (int, error)) func(arg *grob.Argument[byte]) grob.Result {
	return func(arg *grob.Argument[byte]) grob.Result {
		dest := arg.Bytes()
		n, err := fn(dest)
		switch {
		case errors.Is(err, unix.ERANGE):
			need, qerr := fn(nil)
			if qerr != nil {
				return grob.ErrorCode(qerr)
			}
			// The value may change between the two calls; always ask for more.
			arg.SetNeededSize(max(uint32(need), arg.Size()+1))
			return grob.ErrorCode(err)
		case errors.Is(err, unix.ENODATA):
			return terminal(err)
		case err != nil:
			return grob.ErrorCode(err)
		case len(dest) == 0 && n > 0:
			arg.SetNeededSize(uint32(n))
			return grob.ErrorCode(unix.ERANGE)
		}
		arg.SetNeededSize(uint32(n))
		return grob.ErrorCode(nil)
	}
}

func copyString(f *grob.FrozenBuffer[byte]) (string, error) {
	return string(f.Bytes()), nil
}

// splitNames splits a NUL-separated name list.
func splitNames(b []byte) []string {
	var names []string
	for _, name := range strings.Split(string(b), "\x00") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
