package grob

// Policy chooses the next capacity after an attempt failed only because the
// buffer was too small.
//
// attempt starts at 1 and counts the grows so far. current is the capacity
// that was too small and desired is the capacity the call asked for, both in
// bytes. Under the exact-size convention desired is what the call reported it
// needs; under the stored-size convention it is only a lower bound.
//
// The result must be strictly greater than current. The negotiator panics
// with ErrPolicyNotIncreasing otherwise.
type Policy interface {
	NextCapacity(attempt int, current, desired uint32) uint32
}

// PolicyFunc adapts an ordinary function to a Policy.
type PolicyFunc func(attempt int, current, desired uint32) uint32

// NextCapacity calls f.
func (f PolicyFunc) NextCapacity(attempt int, current, desired uint32) uint32 {
	return f(attempt, current, desired)
}
