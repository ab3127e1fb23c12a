//go:build linux || darwin

// Package mmap provides anonymous memory mappings for large buffers.
//
// Mapped memory is page-aligned and goes back to the operating system as
// soon as it is unmapped, instead of waiting for the garbage collector.
package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Supported reports whether Alloc maps memory on this platform.
const Supported = true

// Alloc maps size bytes of zeroed, private, read-write memory.
func Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap: %d bytes: %w", size, err)
	}
	return data, nil
}

// Free unmaps data, which must be a slice returned by Alloc and not yet
// freed. Anything else is an error.
func Free(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}

// PageSize returns the mapping granularity.
func PageSize() int {
	return unix.Getpagesize()
}
