package grob

import "unsafe"

// FrozenBuffer is the read-only result of a negotiation.
//
// It wraps the final dynamic buffer, the fixed buffer, or nothing at all
// when the call stored no data. The view does not change after Freeze.
// Callers must not write through the returned slices.
type FrozenBuffer[E Element] struct {
	view    []byte
	n       int
	dynamic *DynamicBuffer
}

// Len returns the number of elements stored.
func (f *FrozenBuffer[E]) Len() int { return f.n }

// Empty reports whether the call stored nothing.
func (f *FrozenBuffer[E]) Empty() bool { return f.n == 0 }

// Bytes returns the stored data, or nil when empty.
func (f *FrozenBuffer[E]) Bytes() []byte {
	if f.n == 0 {
		return nil
	}
	return f.view
}

// Elems returns the stored data as elements, or nil when empty.
func (f *FrozenBuffer[E]) Elems() []E {
	if f.n == 0 {
		return nil
	}
	return elems[E](f.view)[:f.n:f.n]
}

// Pointer returns the first stored element, nil when empty.
func (f *FrozenBuffer[E]) Pointer() *E {
	if f.n == 0 {
		return nil
	}
	return (*E)(unsafe.Pointer(&f.view[0]))
}

// Release hands a dynamic buffer back to its allocator. The FrozenBuffer is
// empty afterwards.
func (f *FrozenBuffer[E]) Release() {
	f.view = nil
	f.n = 0
	if f.dynamic != nil {
		f.dynamic.Release()
		f.dynamic = nil
	}
}

// Struct returns the start of f's data as a *T, or nil when fewer than
// sizeof(T) bytes were stored. Calls that return a structure (or a linked
// list of them) in a byte buffer are read this way.
func Struct[T any, E Element](f *FrozenBuffer[E]) *T {
	var zero T
	b := f.Bytes()
	if len(b) < int(unsafe.Sizeof(zero)) || len(b) == 0 {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}
