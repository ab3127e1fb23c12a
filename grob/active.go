package grob

type activeKind uint8

const (
	// activeEmpty holds no buffer: mid-swap in grow, or after release.
	activeEmpty activeKind = iota
	activeFixed
	activeDynamic
)

// activeBuffer is the one buffer a negotiation currently writes into.
type activeBuffer struct {
	kind    activeKind
	fixed   *FixedBuffer
	dynamic *DynamicBuffer
}

func (a *activeBuffer) capacity() uint32 {
	switch a.kind {
	case activeFixed:
		return a.fixed.Capacity()
	case activeDynamic:
		return a.dynamic.Capacity()
	default:
		panic(ErrBufferSwitching)
	}
}

func (a *activeBuffer) writeView() []byte {
	switch a.kind {
	case activeFixed:
		return a.fixed.WriteView()
	case activeDynamic:
		return a.dynamic.WriteView()
	default:
		panic(ErrBufferSwitching)
	}
}

func (a *activeBuffer) commit(finalSize uint32) []byte {
	switch a.kind {
	case activeFixed:
		a.fixed.Commit(finalSize)
		return a.fixed.ReadView()
	case activeDynamic:
		a.dynamic.Commit(finalSize)
		return a.dynamic.ReadView()
	default:
		panic(ErrBufferSwitching)
	}
}

// negotiator owns the active buffer and replaces it when the call needs more room.
type negotiator struct {
	active   activeBuffer
	policy   Policy
	alloc    Allocator
	attempts int
}

func newNegotiator(initial *FixedBuffer, policy Policy, alloc Allocator) negotiator {
	if policy == nil {
		panic(ErrNilPolicy)
	}
	if initial == nil {
		initial = &FixedBuffer{}
	}
	return negotiator{
		active: activeBuffer{kind: activeFixed, fixed: initial},
		policy: policy,
		alloc:  alloc,
	}
}

func (n *negotiator) capacity() uint32 { return n.active.capacity() }

func (n *negotiator) raw() []byte { return n.active.writeView() }

// grow replaces the active buffer with a larger dynamic one. It is a no-op
// when desired already fits.
func (n *negotiator) grow(desired uint32) {
	current := n.capacity()
	if desired <= current {
		return
	}
	n.attempts++
	next := n.policy.NextCapacity(n.attempts, current, desired)
	if next <= current {
		panic(violation(ErrPolicyNotIncreasing,
			"attempt %d: current %d, desired %d, got %d", n.attempts, current, desired, next))
	}
	// Free the old allocation first so the allocator can reuse it for the larger one.
	old := n.active
	n.active = activeBuffer{kind: activeEmpty}
	if old.kind == activeDynamic {
		old.dynamic.Release()
	}
	n.active = activeBuffer{kind: activeDynamic, dynamic: NewDynamic(n.alloc, next)}
}

// take moves the active buffer out, leaving the negotiator empty.
func (n *negotiator) take() activeBuffer {
	a := n.active
	n.active = activeBuffer{kind: activeEmpty}
	return a
}

// release frees any dynamic allocation and leaves the negotiator empty.
func (n *negotiator) release() {
	a := n.take()
	if a.kind == activeDynamic {
		a.dynamic.Release()
	}
}
