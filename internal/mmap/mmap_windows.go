//go:build windows

// Package mmap provides anonymous memory mappings for large buffers.
//
// Mapped memory is page-aligned and goes back to the operating system as
// soon as it is unmapped, instead of waiting for the garbage collector.
package mmap

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Supported reports whether Alloc maps memory on this platform.
const Supported = true

// Alloc commits size bytes of zeroed, read-write memory.
func Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid size %d", size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("mmap: %d bytes: %w", size, err)
	}
	return unsafe.Slice((*byte)(pointer(addr)), size), nil
}

// pointer converts an address returned by VirtualAlloc. The memory lies
// outside the Go heap and stays put until VirtualFree, so the garbage
// collector never needs to track or move it.
func pointer(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}

// Free releases data, which must be a slice returned by Alloc.
func Free(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}

// PageSize returns the allocation granularity.
func PageSize() int {
	return 4096
}
