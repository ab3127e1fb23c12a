package grob

import "unsafe"

// noCopy lets go vet's copylocks check flag values that must not be copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Argument is the bridge between one attempt of a call and the buffer.
//
// It provides the call's buffer arguments (Pointer/Bytes/Elems plus the size
// slot) and the three ways an attempt ends: Commit, CommitNoData and Grow.
// Each of those consumes the Argument; any later use panics with
// ErrArgumentSpent. A GrowableBuffer hands out one Argument at a time.
type Argument[E Element] struct {
	noCopy  noCopy
	parent  *GrowableBuffer[E]
	view    []byte
	size    uint32
	attempt int
	spent   bool
}

func (a *Argument[E]) check() {
	if a.spent {
		panic(ErrArgumentSpent)
	}
}

// Bytes returns the writable region. Its length is the capacity in bytes.
func (a *Argument[E]) Bytes() []byte {
	a.check()
	return a.view
}

// Elems returns the writable region as elements.
func (a *Argument[E]) Elems() []E {
	a.check()
	return elems[E](a.view)
}

// Pointer returns the start of the writable region, or nil when the buffer
// has no capacity.
func (a *Argument[E]) Pointer() *E {
	a.check()
	if len(a.view) < int(width[E]()) {
		return nil
	}
	return (*E)(unsafe.Pointer(&a.view[0]))
}

// Size returns the size slot: the buffer size in elements before the call.
func (a *Argument[E]) Size() uint32 {
	a.check()
	return a.size
}

// SizePtr returns the size slot for calls that take a pointer to the buffer
// size and write back the size they need or stored.
func (a *Argument[E]) SizePtr() *uint32 {
	a.check()
	return &a.size
}

// NeededSize implements NeededSize.
func (a *Argument[E]) NeededSize() uint32 {
	a.check()
	return a.size
}

// SetNeededSize implements NeededSize.
func (a *Argument[E]) SetNeededSize(v uint32) {
	a.check()
	a.size = v
}

// Attempt returns the 1-based number of this attempt. Every Argument counts,
// including ones whose Grow left the buffer as it was. The engine never caps
// attempts; callers that want a limit check this.
func (a *Argument[E]) Attempt() int { return a.attempt }

// Commit records the size slot as the final size.
func (a *Argument[E]) Commit() {
	a.consume()
	a.parent.setFinalSize(a.size)
}

// CommitNoData records a final size of zero.
func (a *Argument[E]) CommitNoData() {
	a.consume()
	a.parent.setFinalSize(0)
}

// Grow grows the buffer to hold the size slot.
func (a *Argument[E]) Grow() {
	a.consume()
	a.parent.grow(a.size)
}

// Apply dispatches action and reports whether the negotiation is finished.
func (a *Argument[E]) Apply(action Action) bool {
	switch action {
	case ActionCommit:
		a.Commit()
		return true
	case ActionGrow:
		a.Grow()
		return false
	case ActionNoData:
		a.CommitNoData()
		return true
	default:
		panic(violation(ErrInvalidAction, "%d", uint8(action)))
	}
}

func (a *Argument[E]) consume() {
	a.check()
	a.spent = true
	a.view = nil
	if a.parent.outstanding == a {
		a.parent.outstanding = nil
	}
}
