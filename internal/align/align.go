// Package align provides alignment helpers for buffers handed to platform calls.
//
// Platform calls expect their output buffers aligned to Platform bytes. Go only
// guarantees byte alignment for a []byte, so callers locate the first aligned
// address inside a region and hand that sub-slice to the call.
package align

import "unsafe"

// Up returns n aligned up to the next multiple of a, which must be a power of two.
//
// Example:
//
//	Up(1, 8)  = 8
//	Up(8, 8)  = 8
//	Up(9, 16) = 16
func Up(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}

// Offset returns the number of bytes to skip from p to reach an address
// aligned to a. The result is in [0, a).
func Offset(p unsafe.Pointer, a uintptr) uintptr {
	addr := uintptr(p)
	return Up(addr, a) - addr
}

// Is reports whether p is aligned to a.
func Is(p unsafe.Pointer, a uintptr) bool {
	return uintptr(p)&(a-1) == 0
}

// Slice returns the aligned part of b and the number of bytes skipped to
// reach it. It returns nil when b cannot hold a single aligned byte.
func Slice(b []byte, a uintptr) ([]byte, int) {
	if len(b) == 0 {
		return nil, 0
	}
	off := int(Offset(unsafe.Pointer(&b[0]), a))
	if off >= len(b) {
		return nil, off
	}
	return b[off:len(b):len(b)], off
}
