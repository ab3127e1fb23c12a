package grob

import "github.com/joshuapare/grobkit/internal/buf"

type growableState uint8

const (
	stateOpen growableState = iota
	stateFrozen
	stateReleased
)

// GrowableBuffer negotiates a buffer large enough for a call.
//
// Create one per call with New, request an Argument before each attempt,
// apply the attempt's Action, and Freeze once the Action was ActionCommit or
// ActionNoData. Run does all of that.
type GrowableBuffer[E Element] struct {
	noCopy      noCopy
	neg         negotiator
	finalSize   uint32
	outstanding *Argument[E]
	issued      int
	state       growableState
}

// New creates a GrowableBuffer starting from initial (nil means zero-sized)
// and growing per policy. opts may be nil.
func New[E Element](initial *FixedBuffer, policy Policy, opts *Options) *GrowableBuffer[E] {
	return &GrowableBuffer[E]{
		neg: newNegotiator(initial, policy, opts.allocator()),
	}
}

func (g *GrowableBuffer[E]) checkOpen() {
	if g.state != stateOpen {
		panic(ErrFrozen)
	}
}

// Argument returns the Argument for the next attempt. It panics with
// ErrArgumentOutstanding if the previous Argument was not consumed.
func (g *GrowableBuffer[E]) Argument() *Argument[E] {
	g.checkOpen()
	if g.outstanding != nil {
		panic(ErrArgumentOutstanding)
	}
	g.finalSize = 0
	g.issued++
	view := g.neg.raw()
	a := &Argument[E]{
		parent:  g,
		view:    view,
		size:    uint32(len(view)) / width[E](),
		attempt: g.issued,
	}
	g.outstanding = a
	return a
}

// Attempts returns how many times the buffer has grown. A Grow whose size
// already fits does not count.
func (g *GrowableBuffer[E]) Attempts() int { return g.neg.attempts }

// Capacity returns the current capacity in bytes.
func (g *GrowableBuffer[E]) Capacity() uint32 {
	g.checkOpen()
	return g.neg.capacity()
}

// Freeze ends the negotiation and returns the read-only result. It may be
// called exactly once, with no Argument outstanding.
//
// When the final size is zero (ActionNoData, or no successful attempt) the
// result is empty regardless of which buffer was active.
func (g *GrowableBuffer[E]) Freeze() *FrozenBuffer[E] {
	g.checkOpen()
	if g.outstanding != nil {
		panic(ErrArgumentOutstanding)
	}
	g.state = stateFrozen
	if g.finalSize == 0 {
		g.neg.release()
		return &FrozenBuffer[E]{}
	}
	active := g.neg.take()
	view := active.commit(buf.SatMul32(g.finalSize, width[E]()))
	return &FrozenBuffer[E]{
		view:    view,
		n:       int(g.finalSize),
		dynamic: active.dynamic,
	}
}

// Release abandons the negotiation and frees any dynamic allocation. It is
// a no-op after Freeze or a previous Release.
func (g *GrowableBuffer[E]) Release() {
	if g.state != stateOpen {
		return
	}
	g.state = stateReleased
	if a := g.outstanding; a != nil {
		a.spent = true
		a.view = nil
		g.outstanding = nil
	}
	g.neg.release()
}

func (g *GrowableBuffer[E]) grow(size uint32) {
	g.neg.grow(buf.SatMul32(size, width[E]()))
}

func (g *GrowableBuffer[E]) setFinalSize(size uint32) {
	need := buf.SatMul32(size, width[E]())
	if c := g.neg.capacity(); need > c {
		panic(violation(ErrCommitOverflow, "%d elements need %d bytes, capacity %d", size, need, c))
	}
	g.finalSize = size
}
