package grob

import (
	"errors"
	"syscall"

	"github.com/joshuapare/grobkit/internal/buf"
)

// ErrorCodeResult classifies calls that report a status code and, when the
// buffer is too small, usually the exact size needed (through the
// Argument's size slot).
//
//	InsufficientBuffer, BufferOverflow, MoreData  -> ActionGrow
//	NoData                                        -> ActionNoData
//	Success                                       -> ActionCommit (ActionNoData if the size slot is 0)
//	anything else                                 -> *CallError
type ErrorCodeResult struct {
	// Code is the status the call reported.
	Code syscall.Errno
	// Err, when set, is a failure that carries no platform code. It is terminal.
	Err error
	// Codes overrides the platform codes (nil means PlatformCodes).
	Codes *Codes
}

// ErrorCode builds an ErrorCodeResult from the error a call returned: nil is
// success, a syscall.Errno is used as the code, anything else is terminal.
func ErrorCode(err error) ErrorCodeResult {
	if err == nil {
		return ErrorCodeResult{Code: resolveCodes(nil).Success}
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return ErrorCodeResult{Code: errno}
	}
	return ErrorCodeResult{Err: err}
}

// Classify implements Result.
func (r ErrorCodeResult) Classify(n NeededSize) (Action, error) {
	if r.Err != nil {
		return 0, &CallError{Err: r.Err}
	}
	codes := resolveCodes(r.Codes)
	var action Action
	switch {
	case r.Code == codes.Success:
		action = ActionCommit
	case codes.grows(r.Code):
		action = ActionGrow
	case r.Code == codes.NoData:
		action = ActionNoData
	default:
		return 0, &CallError{Err: r.Code}
	}
	if action == ActionCommit && n.NeededSize() == 0 {
		return ActionNoData, nil
	}
	return action, nil
}

// StoredSizeResult classifies calls that return the number of elements they
// stored, and set a status only on failure. A return equal to the buffer size
// is ambiguous between an exact fit and truncation; the status decides.
//
//	Stored == 0, Status Success           -> ActionNoData
//	Stored == 0, size slot 0              -> ActionGrow (size slot set to 1)
//	Stored == 0, any other status         -> *CallError
//	Stored < size slot                    -> ActionCommit (size slot set to Stored)
//	Stored == size slot, InsufficientBuffer -> ActionGrow (size slot doubled)
//
// Any other combination is not produced by a conforming platform and panics
// with ErrUndefinedOutcome.
type StoredSizeResult struct {
	// Stored is the count the call returned.
	Stored uint32
	// Status is the status the call left behind (the last error).
	Status syscall.Errno
	// Err, when set, is a failure that carries no platform code.
	Err error
	// Codes overrides the platform codes (nil means PlatformCodes).
	Codes *Codes
}

// StoredSize builds a StoredSizeResult from a call's return value and the
// error it left behind.
func StoredSize(stored uint32, err error) StoredSizeResult {
	r := StoredSizeResult{Stored: stored, Status: resolveCodes(nil).Success}
	if err == nil {
		return r
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		r.Status = errno
	} else {
		r.Err = err
	}
	return r
}

// Classify implements Result.
func (r StoredSizeResult) Classify(n NeededSize) (Action, error) {
	codes := resolveCodes(r.Codes)
	ns := n.NeededSize()
	switch {
	case r.Stored == 0:
		switch {
		case r.Err == nil && r.Status == codes.Success:
			return ActionNoData, nil
		case ns == 0:
			// The buffer had no capacity; any non-zero size lets the Policy
			// pick a real starting capacity.
			n.SetNeededSize(1)
			return ActionGrow, nil
		case r.Err != nil:
			return 0, &CallError{Err: r.Err}
		default:
			return 0, &CallError{Err: r.Status}
		}
	case r.Stored < ns:
		n.SetNeededSize(r.Stored)
		return ActionCommit, nil
	case r.Stored == ns && r.Err == nil && r.Status == codes.InsufficientBuffer:
		n.SetNeededSize(buf.SatMul32(r.Stored, 2))
		return ActionGrow, nil
	default:
		panic(violation(ErrUndefinedOutcome,
			"stored %d, size %d, status %d", r.Stored, ns, uint64(r.Status)))
	}
}
