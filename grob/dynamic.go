package grob

import (
	"unsafe"

	"github.com/joshuapare/grobkit/internal/align"
	"github.com/joshuapare/grobkit/internal/buf"
)

// DynamicBuffer is an aligned allocation of exact capacity. It is owned by
// one negotiation at a time and handed back to its Allocator exactly once.
type DynamicBuffer struct {
	alloc     Allocator
	mem       []byte
	capacity  uint32
	finalSize uint32
}

// NewDynamic allocates capacity bytes from a (GoAllocator when nil).
// Allocation failure is not recoverable and panics.
func NewDynamic(a Allocator, capacity uint32) *DynamicBuffer {
	if a == nil {
		a = GoAllocator{}
	}
	n, ok := buf.ToInt(capacity)
	if !ok {
		panic(violation(ErrShortAllocation, "capacity %d is not addressable", capacity))
	}
	mem := a.Allocate(n)
	if len(mem) < n {
		panic(violation(ErrShortAllocation, "got %d of %d bytes", len(mem), n))
	}
	if n > 0 && !align.Is(unsafe.Pointer(&mem[0]), Alignment) {
		panic(violation(ErrShortAllocation, "allocator returned unaligned memory"))
	}
	return &DynamicBuffer{
		alloc:    a,
		mem:      mem[:n:n],
		capacity: capacity,
	}
}

// Capacity returns the capacity in bytes, 0 once released.
func (d *DynamicBuffer) Capacity() uint32 {
	if d.mem == nil {
		return 0
	}
	return d.capacity
}

// WriteView returns the whole allocation.
func (d *DynamicBuffer) WriteView() []byte { return d.mem }

// Commit records how many bytes the call stored. It panics if finalSize
// exceeds Capacity.
func (d *DynamicBuffer) Commit(finalSize uint32) {
	if c := d.Capacity(); finalSize > c {
		panic(violation(ErrCommitOverflow, "dynamic buffer: %d > %d", finalSize, c))
	}
	d.finalSize = finalSize
}

// ReadView returns the committed bytes.
func (d *DynamicBuffer) ReadView() []byte {
	if d.mem == nil {
		return nil
	}
	return d.mem[:d.finalSize:d.finalSize]
}

// Release hands the memory back to the allocator. Further calls are no-ops.
func (d *DynamicBuffer) Release() {
	if d == nil || d.mem == nil {
		return
	}
	mem := d.mem
	d.mem = nil
	d.finalSize = 0
	d.alloc.Free(mem)
}

// Released reports whether Release has been called.
func (d *DynamicBuffer) Released() bool { return d.mem == nil }
