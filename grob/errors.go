package grob

import (
	"errors"
	"fmt"
	"syscall"
)

// Invariant violations. These are used as panic values; they never come back
// as returned errors.
var (
	// ErrPolicyNotIncreasing indicates a Policy returned a capacity that does not grow the buffer.
	ErrPolicyNotIncreasing = errors.New("grob: growth policy did not increase capacity")

	// ErrArgumentSpent indicates an Argument was used after commit, grow or no-data.
	ErrArgumentSpent = errors.New("grob: argument already consumed")

	// ErrArgumentOutstanding indicates a second Argument was requested before the first was consumed.
	ErrArgumentOutstanding = errors.New("grob: argument still outstanding")

	// ErrFrozen indicates the negotiation was used after Freeze or Release.
	ErrFrozen = errors.New("grob: buffer already frozen")

	// ErrCommitOverflow indicates a final size larger than the buffer capacity.
	ErrCommitOverflow = errors.New("grob: final size exceeds capacity")

	// ErrShortAllocation indicates an Allocator returned less memory than requested.
	ErrShortAllocation = errors.New("grob: allocation failed")

	// ErrBufferSwitching indicates the active buffer was used mid-swap or after release.
	ErrBufferSwitching = errors.New("grob: no active buffer")

	// ErrUndefinedOutcome indicates a stored-size outcome no documented platform behaviour produces.
	ErrUndefinedOutcome = errors.New("grob: undefined stored-size outcome")

	// ErrInvalidAction indicates Apply was given a value that is not an Action.
	ErrInvalidAction = errors.New("grob: invalid action")

	// ErrNilPolicy indicates a GrowableBuffer was created without a Policy.
	ErrNilPolicy = errors.New("grob: nil growth policy")
)

// CallError is returned when a call fails for a reason other than the buffer
// being too small. Err is usually the raw syscall.Errno reported by the call.
type CallError struct {
	// Attempt is the 1-based attempt that failed (0 when unknown).
	Attempt int
	// Err is the underlying failure.
	Err error
}

func (e *CallError) Error() string {
	if e.Attempt > 0 {
		return fmt.Sprintf("grob: call failed on attempt %d: %v", e.Attempt, e.Err)
	}
	return fmt.Sprintf("grob: call failed: %v", e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Code returns the raw platform code carried by the error, if any.
func (e *CallError) Code() (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno, true
	}
	return 0, false
}

func violation(err error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
}
