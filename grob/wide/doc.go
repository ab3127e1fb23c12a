// Package wide converts between Go strings and the NUL-terminated UTF-16
// text that Windows-style calls read and write.
//
// # Overview
//
// Calls that return text fill a []uint16 buffer. String, LossyString and
// Path negotiate that buffer with grob and decode the result:
//
//	name, err := wide.String(func(arg *grob.Argument[uint16]) grob.Result {
//		return grob.ErrorCode(windows.GetUserNameEx(
//			windows.NameSamCompatible, arg.Pointer(), arg.SizePtr()))
//	}, nil)
//
// A single trailing NUL is stripped; calls disagree on whether they count
// it. String rejects unpaired surrogates with *InvalidUTF16Error, which
// carries the raw units. LossyString and Path replace them with U+FFFD.
//
// Encode goes the other way, for string parameters. DecodeANSI handles the
// single-byte "A" variants of a call.
package wide
