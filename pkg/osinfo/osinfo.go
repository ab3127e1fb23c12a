package osinfo

import (
	"errors"

	"github.com/joshuapare/grobkit/grob"
)

// ErrUnsupported is returned on platforms without the requested call.
var ErrUnsupported = errors.New("osinfo: not supported on this platform")

// Options configures a query. A nil *Options uses the defaults.
type Options struct {
	// Grob configures the buffer negotiation.
	// Default: nil (Go heap allocation)
	Grob *grob.Options

	// OnAttempt is called before every attempt with the 1-based attempt
	// number and the buffer size in elements. A non-nil error ends the
	// query with that error.
	// Default: nil
	OnAttempt func(attempt int, size uint32) error
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{}
}

func (o *Options) grob() *grob.Options {
	if o == nil {
		return nil
	}
	return o.Grob
}

// guard runs OnAttempt before each attempt of call.
func guard[E grob.Element](o *Options, call func(arg *grob.Argument[E]) grob.Result) func(arg *grob.Argument[E]) grob.Result {
	if o == nil || o.OnAttempt == nil {
		return call
	}
	return func(arg *grob.Argument[E]) grob.Result {
		if err := o.OnAttempt(arg.Attempt(), arg.Size()); err != nil {
			return grob.Fail(err)
		}
		return call(arg)
	}
}

// terminal ends the negotiation with err as a *grob.CallError, for codes the
// platform table would otherwise treat as success.
func terminal(err error) grob.Result {
	return grob.Fail(&grob.CallError{Err: err})
}
