// Package grob negotiates output buffers for platform calls whose required
// size is only discovered by attempting the call.
//
// # Overview
//
// Many platform calls write into a caller-supplied buffer and report "too
// small" through their own return convention. The usual pattern is:
//
//   - Call with an initial buffer and size
//   - On success, process the returned data
//   - If the buffer was too small, allocate a larger one and try again
//   - On any other failure, report the error
//
// GrowableBuffer implements that loop once. It starts from a caller-supplied
// FixedBuffer (which may be zero-sized), asks a Policy for the next capacity
// whenever the call reports the buffer was too small, and swaps in a larger
// DynamicBuffer. The previous dynamic buffer is released before the larger
// one is allocated, so peak memory is the largest buffer requested.
//
// # Attempts
//
// Each attempt hands the call an Argument: the aligned write region and a
// "needed size" slot the call (or the classifier) fills in. The call's raw
// outcome is converted to an Action by a Result:
//
//	ErrorCodeResult   status code plus, sometimes, the exact size needed
//	StoredSizeResult  number of elements stored; truncation is ambiguous
//
// Applying the Action consumes the Argument. Commit and NoData end the loop;
// Grow replaces the buffer and the call is made again.
//
// # Usage Example
//
//	name, err := grob.Run(grob.New[uint16](grob.NewFixedSize(512), strategy.BumpToNibble{Width: 2}, nil),
//	    func(arg *grob.Argument[uint16]) grob.Result {
//	        return grob.ErrorCode(windows.GetUserNameEx(windows.NameSamCompatible, arg.Pointer(), arg.SizePtr()))
//	    },
//	    func(f *grob.FrozenBuffer[uint16]) (string, error) {
//	        return windows.UTF16ToString(f.Elems()), nil
//	    })
//
// Run, Binary, SmallBinary and LargeBinary bundle the loop; the grob/wide
// package adds UTF-16 string and path entry points.
//
// # Sizes
//
// A GrowableBuffer is generic over its element type. Sizes exchanged with the
// call (Argument.Size, FrozenBuffer.Len) count elements; capacities count bytes.
//
// # Invariant Violations
//
// Misuse is a programming error and panics: a Policy that does not grow the
// buffer, reusing a consumed Argument, requesting a second Argument while one
// is outstanding, committing more than the capacity, or freezing twice.
//
// # Thread Safety
//
// A GrowableBuffer and its Arguments belong to a single goroutine.
package grob
