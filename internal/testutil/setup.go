package testutil

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
	"unsafe"

	"github.com/joshuapare/grobkit/grob"
)

// CountingAllocator tracks the memory a negotiation holds.
//
// It allocates through grob.GoAllocator and records live and peak bytes, so
// tests can check that the old dynamic buffer is handed back before the
// next one is allocated. Freeing a slice it did not hand out, or freeing it
// twice, panics.
//
// Example:
//
//	a := testutil.NewCountingAllocator()
//	g := grob.New[byte](nil, policy, &grob.Options{Allocator: a})
//	...
//	require.Zero(t, a.Live())
type CountingAllocator struct {
	live   map[uintptr]int
	bytes  int
	peak   int
	allocs []int
	frees  int
}

// NewCountingAllocator returns an empty CountingAllocator.
func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{live: make(map[uintptr]int)}
}

// Allocate implements grob.Allocator.
func (c *CountingAllocator) Allocate(size int) []byte {
	b := grob.GoAllocator{}.Allocate(size)
	c.allocs = append(c.allocs, size)
	if size == 0 {
		return b
	}
	c.live[key(b)] = size
	c.bytes += size
	if c.bytes > c.peak {
		c.peak = c.bytes
	}
	return b
}

// Free implements grob.Allocator.
func (c *CountingAllocator) Free(b []byte) {
	c.frees++
	if len(b) == 0 {
		return
	}
	size, ok := c.live[key(b)]
	if !ok {
		panic(fmt.Sprintf("testutil: free of unknown or already freed buffer (%d bytes)", len(b)))
	}
	delete(c.live, key(b))
	c.bytes -= size
}

// Live returns the bytes currently allocated.
func (c *CountingAllocator) Live() int { return c.bytes }

// Peak returns the most bytes ever allocated at once.
func (c *CountingAllocator) Peak() int { return c.peak }

// Allocations returns the size of every allocation, in order.
func (c *CountingAllocator) Allocations() []int { return c.allocs }

// Frees returns how many times Free was called.
func (c *CountingAllocator) Frees() int { return c.frees }

// Largest returns the largest single allocation.
func (c *CountingAllocator) Largest() int {
	largest := 0
	for _, n := range c.allocs {
		largest = max(largest, n)
	}
	return largest
}

func key(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

// Codes is a fixed code table for simulated calls, so tests do not depend on
// the platform they run on.
func Codes() *grob.Codes {
	return &grob.Codes{
		Success:            0,
		InsufficientBuffer: 122,
		BufferOverflow:     111,
		MoreData:           234,
		NoData:             232,
	}
}

// Call is a simulated external call. It counts its invocations and records
// the buffer size it was offered each time.
type Call[E grob.Element] struct {
	// Calls is the number of invocations.
	Calls int
	// Offered is the size slot seen by each invocation, in elements.
	Offered []uint32

	fn func(c *Call[E], arg *grob.Argument[E]) grob.Result
}

// Invoke performs one attempt. It matches the call parameter of grob.Run.
func (c *Call[E]) Invoke(arg *grob.Argument[E]) grob.Result {
	c.Calls++
	c.Offered = append(c.Offered, arg.Size())
	return c.fn(c, arg)
}

// StoredSizeCall simulates a call that returns the number of elements it
// stored. When data does not fit it fills the buffer, returns the buffer
// size and reports InsufficientBuffer. When data is empty it stores nothing
// and reports success.
func StoredSizeCall[E grob.Element](data []E, codes *grob.Codes) *Call[E] {
	return &Call[E]{fn: func(_ *Call[E], arg *grob.Argument[E]) grob.Result {
		size := arg.Size()
		out := arg.Elems()
		if uint32(len(data)) >= size {
			copy(out, data[:size])
			return grob.StoredSizeResult{Stored: size, Status: codes.InsufficientBuffer, Codes: codes}
		}
		n := copy(out, data)
		return grob.StoredSizeResult{Stored: uint32(n), Status: codes.Success, Codes: codes}
	}}
}

// ErrorCodeCall simulates a call that reports the exact size it needs
// through the size slot along with InsufficientBuffer, and stores data once
// it fits. Empty data is reported as success with a needed size of zero.
func ErrorCodeCall[E grob.Element](data []E, codes *grob.Codes) *Call[E] {
	return &Call[E]{fn: func(_ *Call[E], arg *grob.Argument[E]) grob.Result {
		if uint32(len(data)) > arg.Size() {
			arg.SetNeededSize(uint32(len(data)))
			return grob.ErrorCodeResult{Code: codes.InsufficientBuffer, Codes: codes}
		}
		copy(arg.Elems(), data)
		arg.SetNeededSize(uint32(len(data)))
		return grob.ErrorCodeResult{Code: codes.Success, Codes: codes}
	}}
}

// StatusCall simulates a call that always reports code.
func StatusCall[E grob.Element](code syscall.Errno, codes *grob.Codes) *Call[E] {
	return &Call[E]{fn: func(_ *Call[E], _ *grob.Argument[E]) grob.Result {
		return grob.ErrorCodeResult{Code: code, Codes: codes}
	}}
}

// FinalizeCopy returns a finalize function that copies the frozen elements
// out and counts its invocations in *called.
func FinalizeCopy[E grob.Element](called *int) func(f *grob.FrozenBuffer[E]) ([]E, error) {
	return func(f *grob.FrozenBuffer[E]) ([]E, error) {
		*called++
		return append([]E(nil), f.Elems()...), nil
	}
}

// Sequence returns n elements counting up from 1.
func Sequence[E grob.Element](n int) []E {
	out := make([]E, n)
	for i := range out {
		out[i] = E(i + 1)
	}
	return out
}

// RequirePanicIs runs fn and fails the test unless it panics with a value
// matching target under errors.Is.
func RequirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic matching %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic matching %v, got %v", target, r)
		}
	}()
	fn()
}
