package grob

import (
	"github.com/joshuapare/grobkit/internal/align"
	"github.com/joshuapare/grobkit/internal/buf"
)

// FixedBuffer is the initial, fixed-capacity region a negotiation starts
// from. The region is owned by the caller and is never reallocated.
//
// Go only guarantees byte alignment for a []byte, so the usable capacity may
// be up to Alignment-1 bytes smaller than the region. A region smaller than
// Alignment has no usable capacity. A zero-sized FixedBuffer is legal and
// sends the negotiation straight to a dynamic allocation.
type FixedBuffer struct {
	region    []byte
	finalSize uint32
}

// NewFixed wraps region. The caller must not touch region while a
// negotiation uses it.
func NewFixed(region []byte) *FixedBuffer {
	return &FixedBuffer{region: region}
}

// NewFixedSize allocates an aligned region with a capacity of exactly n bytes.
func NewFixedSize(n int) *FixedBuffer {
	if n <= 0 {
		return &FixedBuffer{}
	}
	return &FixedBuffer{region: GoAllocator{}.Allocate(n)}
}

// Capacity returns the number of aligned, writable bytes.
func (f *FixedBuffer) Capacity() uint32 {
	return uint32(len(f.WriteView()))
}

// WriteView returns the aligned writable region, or nil when the region is
// smaller than Alignment.
func (f *FixedBuffer) WriteView() []byte {
	if len(f.region) < int(Alignment) {
		return nil
	}
	view, _ := align.Slice(f.region, Alignment)
	if n := buf.Clamp32(uint64(len(view))); int(n) < len(view) {
		view = view[:n:n]
	}
	return view
}

// Commit records how many bytes the call stored. It panics if finalSize
// exceeds Capacity.
func (f *FixedBuffer) Commit(finalSize uint32) {
	if c := f.Capacity(); finalSize > c {
		panic(violation(ErrCommitOverflow, "fixed buffer: %d > %d", finalSize, c))
	}
	f.finalSize = finalSize
}

// ReadView returns the committed bytes, or nil when the region has no usable capacity.
func (f *FixedBuffer) ReadView() []byte {
	view := f.WriteView()
	if view == nil {
		return nil
	}
	return view[:f.finalSize:f.finalSize]
}

// FinalSize returns the committed size in bytes.
func (f *FixedBuffer) FinalSize() uint32 { return f.finalSize }
