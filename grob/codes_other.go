//go:build !windows && !linux && !darwin

package grob

import (
	"math"
	"syscall"
)

// unmatched is a code no call reports.
const unmatched = syscall.Errno(math.MaxUint32)

var platformCodes = Codes{
	Success:            0,
	InsufficientBuffer: syscall.ERANGE,
	BufferOverflow:     unmatched,
	MoreData:           unmatched,
	NoData:             unmatched,
}
