package grob

import "github.com/joshuapare/grobkit/internal/mmap"

// DefaultMapThreshold is the smallest allocation MapAllocator maps when
// Threshold is zero.
const DefaultMapThreshold = DefaultLargeCapacity

// MapAllocator serves large allocations from anonymous memory mappings,
// which go back to the operating system on Free rather than at the next
// garbage collection. Allocations smaller than Threshold, and all
// allocations on platforms without mappings, come from the Go heap.
//
// Mapped memory is page-aligned, which satisfies Alignment.
type MapAllocator struct {
	// Threshold is the smallest allocation to map.
	// Default: DefaultMapThreshold
	Threshold int
}

func (m MapAllocator) threshold() int {
	if m.Threshold <= 0 {
		return DefaultMapThreshold
	}
	return m.Threshold
}

func (m MapAllocator) maps(size int) bool {
	return mmap.Supported && size > 0 && size >= m.threshold()
}

// Allocate implements Allocator.
func (m MapAllocator) Allocate(size int) []byte {
	if !m.maps(size) {
		return GoAllocator{}.Allocate(size)
	}
	b, err := mmap.Alloc(size)
	if err != nil {
		panic(violation(ErrShortAllocation, "%v", err))
	}
	return b[:size:size]
}

// Free implements Allocator. Heap allocations are left to the garbage
// collector.
func (m MapAllocator) Free(b []byte) {
	if !m.maps(cap(b)) {
		return
	}
	if err := mmap.Free(b[:cap(b)]); err != nil {
		panic(violation(ErrShortAllocation, "unmap: %v", err))
	}
}
