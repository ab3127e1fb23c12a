package grob

import (
	"errors"
	"testing"
)

// requirePanicIs fails the test unless fn panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
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

// recordingAllocator records allocation sizes and frees, and keeps the live
// byte count so tests can check memory is handed back.
type recordingAllocator struct {
	allocs []int
	frees  []int
	live   int
	peak   int
}

func (r *recordingAllocator) Allocate(size int) []byte {
	r.allocs = append(r.allocs, size)
	r.live += size
	r.peak = max(r.peak, r.live)
	return GoAllocator{}.Allocate(size)
}

func (r *recordingAllocator) Free(b []byte) {
	r.frees = append(r.frees, len(b))
	r.live -= len(b)
}

// shortAllocator returns one byte less than asked.
type shortAllocator struct{}

func (shortAllocator) Allocate(size int) []byte { return make([]byte, size-1) }
func (shortAllocator) Free([]byte)              {}

var testCodes = &Codes{
	Success:            0,
	InsufficientBuffer: 122,
	BufferOverflow:     111,
	MoreData:           234,
	NoData:             232,
}

// doubling grows to twice the desired size.
var doubling = PolicyFunc(func(_ int, _, desired uint32) uint32 { return desired * 2 })

// exact grows to exactly the desired size.
var exact = PolicyFunc(func(_ int, _, desired uint32) uint32 { return desired })
