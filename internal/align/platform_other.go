//go:build !windows

package align

// Platform is the alignment used for every buffer handed to a platform call.
const Platform uintptr = 8
