package wide

import (
	"errors"
	"fmt"
)

// ErrEmbeddedNUL is returned by Encode for strings that cannot be passed as
// a NUL-terminated parameter.
var ErrEmbeddedNUL = errors.New("wide: string contains an embedded NUL")

// InvalidUTF16Error reports text that is not valid UTF-16.
type InvalidUTF16Error struct {
	// Units is the raw text, without the trailing NUL.
	Units []uint16
	// Offset is the index of the first unpaired surrogate.
	Offset int
}

func (e *InvalidUTF16Error) Error() string {
	return fmt.Sprintf("wide: unpaired surrogate 0x%04X at unit %d", e.Units[e.Offset], e.Offset)
}
