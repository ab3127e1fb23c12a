package grob

import (
	"errors"

	"github.com/joshuapare/grobkit/grob/strategy"
)

const (
	// DefaultSmallCapacity is the fixed capacity SmallBinary starts with.
	DefaultSmallCapacity = 1024

	// DefaultLargeCapacity is the fixed capacity LargeBinary starts with.
	DefaultLargeCapacity = 64 << 10
)

// Run drives g until call's outcome is ActionCommit or ActionNoData, then
// passes the frozen result to finalize and returns its output.
//
// call performs one attempt with the given Argument and returns the raw
// outcome. A terminal outcome is returned immediately as a *CallError;
// finalize is not called. Dynamic memory is released on every path, so
// finalize must copy out anything it keeps.
func Run[E Element, U any](
	g *GrowableBuffer[E],
	call func(arg *Argument[E]) Result,
	finalize func(f *FrozenBuffer[E]) (U, error),
) (U, error) {
	defer g.Release()
	for {
		arg := g.Argument()
		action, err := call(arg).Classify(arg)
		if err != nil {
			var ce *CallError
			if errors.As(err, &ce) && ce.Attempt == 0 {
				ce.Attempt = arg.Attempt()
			}
			var zero U
			return zero, err
		}
		if arg.Apply(action) {
			break
		}
	}
	f := g.Freeze()
	defer f.Release()
	return finalize(f)
}

// Binary runs a byte-sized negotiation from initial, growing per policy.
func Binary[U any](
	initial *FixedBuffer,
	policy Policy,
	opts *Options,
	call func(arg *Argument[byte]) Result,
	finalize func(f *FrozenBuffer[byte]) (U, error),
) (U, error) {
	return Run(New[byte](initial, policy, opts), call, finalize)
}

// SmallBinary suits calls returning a small structure: it starts from
// DefaultSmallCapacity and grows to the size the call asks for, rounded up
// to 16 bytes.
func SmallBinary[U any](
	call func(arg *Argument[byte]) Result,
	finalize func(f *FrozenBuffer[byte]) (U, error),
) (U, error) {
	return Binary(NewFixedSize(DefaultSmallCapacity), strategy.NearestNibble{}, nil, call, finalize)
}

// LargeBinary suits calls returning tables or lists: it starts from
// DefaultLargeCapacity and grows to the size the call asks for, rounded up
// to 256 bytes plus alignment headroom.
func LargeBinary[U any](
	call func(arg *Argument[byte]) Result,
	finalize func(f *FrozenBuffer[byte]) (U, error),
) (U, error) {
	return Binary(NewFixedSize(DefaultLargeCapacity),
		strategy.QuarterKibi{Alignment: uint32(Alignment)}, nil, call, finalize)
}
