//go:build !linux && !darwin && !windows

// Package mmap provides anonymous memory mappings for large buffers.
package mmap

import "errors"

// Supported reports whether Alloc maps memory on this platform.
const Supported = false

// Alloc always fails when mappings are not available.
func Alloc(size int) ([]byte, error) {
	return nil, errors.New("mmap: not supported on this platform")
}

// Free is a no-op.
func Free([]byte) error { return nil }

// PageSize returns a conservative page size.
func PageSize() int { return 4096 }
