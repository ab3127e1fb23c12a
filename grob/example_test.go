package grob_test

import (
	"fmt"
	"syscall"

	"github.com/joshuapare/grobkit/grob"
	"github.com/joshuapare/grobkit/grob/strategy"
)

// message is a stand-in for a platform call that reports the size it needs.
const message = "a result that does not fit in the first buffer"

func fillMessage(buf []byte, size *uint32) syscall.Errno {
	if int(*size) < len(message) {
		*size = uint32(len(message))
		return grob.PlatformCodes().InsufficientBuffer
	}
	*size = uint32(copy(buf, message))
	return 0
}

// Example negotiates a buffer for a call using the error-code convention.
func Example() {
	g := grob.New[byte](grob.NewFixedSize(16), strategy.NearestNibble{}, nil)
	s, err := grob.Run(g, func(arg *grob.Argument[byte]) grob.Result {
		return grob.ErrorCodeResult{Code: fillMessage(arg.Bytes(), arg.SizePtr())}
	}, func(f *grob.FrozenBuffer[byte]) (string, error) {
		return string(f.Bytes()), nil
	})
	if err != nil {
		fmt.Printf("call failed: %v\n", err)
		return
	}
	fmt.Println(s)
	fmt.Println("grows:", g.Attempts())
	// Output:
	// a result that does not fit in the first buffer
	// grows: 1
}

// ExampleStoredSizeResult drives a call that only returns how much it
// stored, filling the buffer when the result is truncated.
func ExampleStoredSizeResult() {
	codes := grob.PlatformCodes()
	s, err := grob.Binary(nil, strategy.DoubleNibbles{Floor: 16}, nil,
		func(arg *grob.Argument[byte]) grob.Result {
			n := copy(arg.Bytes(), message)
			if n == len(arg.Bytes()) {
				return grob.StoredSizeResult{Stored: uint32(n), Status: codes.InsufficientBuffer}
			}
			return grob.StoredSize(uint32(n), nil)
		},
		func(f *grob.FrozenBuffer[byte]) (string, error) {
			return string(f.Bytes()), nil
		})
	fmt.Println(s, err)
	// Output:
	// a result that does not fit in the first buffer <nil>
}

// ExamplePolicyFunc shows a custom growth policy.
func ExamplePolicyFunc() {
	var grows []uint32
	policy := grob.PolicyFunc(func(_ int, current, desired uint32) uint32 {
		next := max(current*4, desired)
		grows = append(grows, next)
		return next
	})
	n, _ := grob.Binary(grob.NewFixedSize(8), policy, nil,
		func(arg *grob.Argument[byte]) grob.Result {
			return grob.ErrorCodeResult{Code: fillMessage(arg.Bytes(), arg.SizePtr())}
		},
		func(f *grob.FrozenBuffer[byte]) (int, error) { return f.Len(), nil })
	fmt.Println(n, grows)
	// Output:
	// 46 [46]
}
