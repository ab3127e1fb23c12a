package grob

import "unsafe"

// Element is the unit a call counts its buffer in: bytes for binary data,
// uint16 for UTF-16 text.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func width[E Element]() uint32 {
	var e E
	return uint32(unsafe.Sizeof(e))
}

// elems reinterprets b as whole elements. b is always Alignment-aligned.
func elems[E Element](b []byte) []E {
	w := int(width[E]())
	if len(b) < w {
		return nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(&b[0])), len(b)/w)
}
