//go:build windows

package grob

import "golang.org/x/sys/windows"

var platformCodes = Codes{
	Success:            windows.ERROR_SUCCESS,
	InsufficientBuffer: windows.ERROR_INSUFFICIENT_BUFFER,
	BufferOverflow:     windows.ERROR_BUFFER_OVERFLOW,
	MoreData:           windows.ERROR_MORE_DATA,
	NoData:             windows.ERROR_NO_DATA,
}
