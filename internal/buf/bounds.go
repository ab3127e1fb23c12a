// Package buf contains overflow-safe arithmetic for buffer capacities.
//
// Capacities exchanged with platform calls are uint32 byte counts. Growth
// arithmetic is carried out in uint64 and clamped back into range at the end,
// so no intermediate result can wrap.
package buf

import "math"

// MaxCapacity is the largest capacity a platform call can be handed.
const MaxCapacity = math.MaxUint32

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Clamp32 limits v to MaxCapacity.
func Clamp32(v uint64) uint32 {
	if v > MaxCapacity {
		return MaxCapacity
	}
	return uint32(v)
}

// RoundUp returns v rounded up to the next multiple of m.
// m must be non-zero. Inputs derived from uint32 values cannot overflow.
//
// Example:
//
//	RoundUp(1, 16)  = 16
//	RoundUp(16, 16) = 16
//	RoundUp(17, 16) = 32
func RoundUp(v, m uint64) uint64 {
	return (v + m - 1) / m * m
}

// SatMul32 returns a*b, saturating at MaxCapacity.
func SatMul32(a, b uint32) uint32 {
	return Clamp32(uint64(a) * uint64(b))
}

// SatAdd32 returns a+b, saturating at MaxCapacity.
func SatAdd32(a, b uint32) uint32 {
	return Clamp32(uint64(a) + uint64(b))
}

// ToInt converts a capacity to int, returning ok = false on platforms where
// int cannot hold it.
func ToInt(c uint32) (int, bool) {
	if uint64(c) > math.MaxInt {
		return 0, false
	}
	return int(c), true
}

// Max64 returns the largest of its arguments.
func Max64(v uint64, rest ...uint64) uint64 {
	for _, r := range rest {
		if r > v {
			v = r
		}
	}
	return v
}
