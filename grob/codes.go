package grob

import "syscall"

// Codes names the platform status codes the classifiers react to.
//
// The zero value is not useful; use PlatformCodes or fill every field.
type Codes struct {
	Success            syscall.Errno
	InsufficientBuffer syscall.Errno
	BufferOverflow     syscall.Errno
	MoreData           syscall.Errno
	NoData             syscall.Errno
}

// PlatformCodes returns the codes of the running platform.
func PlatformCodes() *Codes {
	c := platformCodes
	return &c
}

// grows reports whether code means "the buffer was too small".
func (c *Codes) grows(code syscall.Errno) bool {
	if code == c.Success {
		return false
	}
	return code == c.InsufficientBuffer || code == c.BufferOverflow || code == c.MoreData
}

func resolveCodes(c *Codes) *Codes {
	if c == nil {
		return &platformCodes
	}
	return c
}
