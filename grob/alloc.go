package grob

import (
	"unsafe"

	"github.com/joshuapare/grobkit/internal/align"
	"github.com/joshuapare/grobkit/internal/buf"
)

// Alignment is the address alignment of every buffer handed to a call.
const Alignment = align.Platform

// Allocator provides the memory behind DynamicBuffers.
//
// Allocate must return a slice of exactly size bytes whose first byte is
// aligned to Alignment. Free is called exactly once for every slice
// Allocate returned, as soon as the negotiation no longer needs it.
type Allocator interface {
	Allocate(size int) []byte
	Free(b []byte)
}

// GoAllocator allocates from the Go heap. Free drops nothing; the garbage
// collector reclaims the memory once the last reference is gone.
type GoAllocator struct{}

// Allocate returns an Alignment-aligned slice of size bytes.
func (GoAllocator) Allocate(size int) []byte {
	padded, ok := buf.AddOverflowSafe(size, int(Alignment)-1)
	if !ok {
		panic(violation(ErrShortAllocation, "size %d overflows", size))
	}
	raw := make([]byte, padded)
	if size == 0 {
		return raw[:0:0]
	}
	off := int(align.Offset(unsafe.Pointer(&raw[0]), Alignment))
	return raw[off : off+size : off+size]
}

// Free is a no-op.
func (GoAllocator) Free([]byte) {}

// Options configures a GrowableBuffer.
type Options struct {
	// Allocator provides dynamic buffers.
	// Default: GoAllocator
	Allocator Allocator
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{Allocator: GoAllocator{}}
}

func (o *Options) allocator() Allocator {
	if o == nil || o.Allocator == nil {
		return GoAllocator{}
	}
	return o.Allocator
}
