package grob

// Action is what to do after a call returns.
type Action uint8

const (
	// ActionCommit means the call succeeded and the buffer holds usable data.
	ActionCommit Action = iota + 1

	// ActionGrow means the call failed only because the buffer was too small.
	// The buffer is grown per the Policy and the call is tried again.
	ActionGrow

	// ActionNoData means the call succeeded but stored nothing. Freezing
	// still yields a (empty) FrozenBuffer so callers handle one shape.
	ActionNoData
)

func (a Action) String() string {
	switch a {
	case ActionCommit:
		return "commit"
	case ActionGrow:
		return "grow"
	case ActionNoData:
		return "no-data"
	default:
		return "invalid"
	}
}

// NeededSize is the size slot shared by a call and its classifier.
//
// Before the call it holds the buffer size in elements. Calls that report
// the size they need through an out-parameter overwrite it; stored-size
// classifiers set it to the number stored or to the next size to try.
type NeededSize interface {
	NeededSize() uint32
	SetNeededSize(v uint32)
}

// Result converts a raw call outcome into an Action, or a terminal error
// when the outcome is neither success nor "buffer too small".
//
// Classify performs no I/O.
type Result interface {
	Classify(n NeededSize) (Action, error)
}

// ResultFunc adapts an ordinary function to a Result.
type ResultFunc func(n NeededSize) (Action, error)

// Classify calls f.
func (f ResultFunc) Classify(n NeededSize) (Action, error) { return f(n) }

// Fail returns a Result that ends the negotiation with err. Callers use it
// to stop the loop on their own terms, for example after too many attempts.
func Fail(err error) Result {
	return ResultFunc(func(NeededSize) (Action, error) {
		return 0, err
	})
}
