package strategy

import "github.com/joshuapare/grobkit/internal/buf"

const (
	// nibble is the granularity for small, exact-size allocations.
	nibble = 16

	// quarterKibi is the granularity for large, exact-size allocations.
	quarterKibi = 256
)

// NearestNibble grows to desired rounded up to a multiple of 16 bytes.
type NearestNibble struct{}

// NextCapacity implements grob.Policy.
func (NearestNibble) NextCapacity(_ int, _, desired uint32) uint32 {
	return buf.Clamp32(buf.RoundUp(uint64(desired), nibble))
}

// QuarterKibi grows to desired plus Alignment headroom, rounded up to a
// multiple of 256 bytes.
type QuarterKibi struct {
	// Alignment is the platform buffer alignment (grob.Alignment).
	Alignment uint32
}

// NextCapacity implements grob.Policy.
func (q QuarterKibi) NextCapacity(_ int, _, desired uint32) uint32 {
	// ceil((desired + alignment) / 256) * 256
	bytes := (uint64(desired) + quarterKibi - 1 + uint64(q.Alignment)) / quarterKibi * quarterKibi
	return buf.Clamp32(bytes)
}

// DoubleNibbles doubles the current capacity (counted in whole 16-byte
// units), never going below desired or Floor. It suits stored-size calls,
// where desired is only a lower bound.
type DoubleNibbles struct {
	// Floor is the smallest capacity to grow to, typically large enough
	// that the first grow succeeds for common results.
	Floor uint32
}

// NextCapacity implements grob.Policy.
func (d DoubleNibbles) NextCapacity(_ int, current, desired uint32) uint32 {
	doubled := buf.RoundUp(uint64(current), nibble) * 2
	return buf.Clamp32(buf.Max64(doubled, uint64(desired), uint64(d.Floor)))
}

// BumpToNibble grows to desired plus one element, rounded up to a multiple
// of 16 bytes. The extra element leaves room for a terminator some calls
// write without counting it.
type BumpToNibble struct {
	// Width is the element size in bytes (2 for UTF-16).
	Width uint32
}

// NextCapacity implements grob.Policy.
func (b BumpToNibble) NextCapacity(_ int, _, desired uint32) uint32 {
	bumped := buf.RoundUp(uint64(desired)+uint64(b.Width), nibble)
	return buf.Clamp32(buf.Max64(bumped, uint64(desired)))
}
