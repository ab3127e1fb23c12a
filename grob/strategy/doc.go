// Package strategy provides growth policies for grob.GrowableBuffer.
//
// Two reporting conventions drive what the desired capacity means:
//
//   - Exact size: the call says how much it needs. NearestNibble,
//     QuarterKibi and BumpToNibble round that up to a heap-friendly size.
//   - Stored size: the call only says it filled the buffer, so desired is a
//     lower bound. DoubleNibbles doubles the current capacity, with a floor.
//
// All arithmetic is done in uint64 and clamped to the largest uint32, so no
// policy can overflow. Given desired > current, every policy returns a
// capacity greater than current.
//
// Platform constants (alignment, element width, floors) are constructor
// fields; the package holds no mutable state.
package strategy
