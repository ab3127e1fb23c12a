//go:build linux || darwin

package grob

import "golang.org/x/sys/unix"

// Unix calls report truncation with ERANGE (getcwd, getxattr, ttyname_r),
// occasionally E2BIG or EOVERFLOW, and a missing attribute with ENODATA.
var platformCodes = Codes{
	Success:            0,
	InsufficientBuffer: unix.ERANGE,
	BufferOverflow:     unix.E2BIG,
	MoreData:           unix.EOVERFLOW,
	NoData:             unix.ENODATA,
}
