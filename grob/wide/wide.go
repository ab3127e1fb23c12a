package wide

import (
	"bytes"
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/grobkit/grob"
	"github.com/joshuapare/grobkit/grob/strategy"
)

const (
	// userNameLength is the longest user name (UNLEN).
	userNameLength = 256

	// maxPath is the classic path limit (MAX_PATH), terminator included.
	maxPath = 260

	// CapacityForNames is the initial capacity, in bytes, for names: a
	// 256-character user or computer name plus its terminator.
	CapacityForNames = (userNameLength+1)*2 + int(grob.Alignment)

	// CapacityForPaths is the initial capacity, in bytes, for paths.
	CapacityForPaths = maxPath*2 + int(grob.Alignment)
)

// utf16le matches the native layout of every platform with UTF-16 calls.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// String runs call until it stores a name and decodes it strictly.
// opts may be nil.
func String(call func(arg *grob.Argument[uint16]) grob.Result, opts *grob.Options) (string, error) {
	return grob.Run(newNameBuffer(opts), call, ToString)
}

// LossyString is String with unpaired surrogates replaced by U+FFFD.
func LossyString(call func(arg *grob.Argument[uint16]) grob.Result, opts *grob.Options) (string, error) {
	return grob.Run(newNameBuffer(opts), call, func(f *grob.FrozenBuffer[uint16]) (string, error) {
		return ToLossyString(f), nil
	})
}

// Path runs call until it stores a path. Paths can exceed MAX_PATH, so the
// buffer doubles from CapacityForPaths rather than trusting the size the
// call reports.
func Path(call func(arg *grob.Argument[uint16]) grob.Result, opts *grob.Options) (string, error) {
	g := grob.New[uint16](
		grob.NewFixedSize(CapacityForPaths),
		strategy.DoubleNibbles{Floor: uint32(CapacityForPaths)},
		opts,
	)
	return grob.Run(g, call, func(f *grob.FrozenBuffer[uint16]) (string, error) {
		return ToPath(f), nil
	})
}

func newNameBuffer(opts *grob.Options) *grob.GrowableBuffer[uint16] {
	return grob.New[uint16](
		grob.NewFixedSize(CapacityForNames),
		strategy.BumpToNibble{Width: 2},
		opts,
	)
}

// ToString decodes f, failing on unpaired surrogates. An empty buffer
// decodes to "".
func ToString(f *grob.FrozenBuffer[uint16]) (string, error) {
	units := trimNUL(f.Elems())
	if off := invalidAt(units); off >= 0 {
		return "", &InvalidUTF16Error{Units: append([]uint16(nil), units...), Offset: off}
	}
	return decode(units), nil
}

// ToLossyString decodes f, replacing unpaired surrogates with U+FFFD.
func ToLossyString(f *grob.FrozenBuffer[uint16]) string {
	return decode(trimNUL(f.Elems()))
}

// ToPath decodes f as a path.
func ToPath(f *grob.FrozenBuffer[uint16]) string {
	return ToLossyString(f)
}

// Decode converts units, up to the first NUL, to a string.
func Decode(units []uint16) string {
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}
	return decode(units)
}

// Encode converts s to NUL-terminated UTF-16 for use as a call parameter.
// Invalid UTF-8 is replaced with U+FFFD.
func Encode(s string) ([]uint16, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	units := make([]uint16, len(b)/2+1)
	for i := 0; i < len(b)/2; i++ {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return units, nil
}

// DecodeANSI decodes single-byte text written by an "A" variant call, up to
// the first NUL. cm defaults to Windows-1252.
func DecodeANSI(b []byte, cm *charmap.Charmap) (string, error) {
	if cm == nil {
		cm = charmap.Windows1252
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	out, _, err := transform.Bytes(cm.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func trimNUL(units []uint16) []uint16 {
	if n := len(units); n > 0 && units[n-1] == 0 {
		return units[:n-1]
	}
	return units
}

// invalidAt returns the index of the first unpaired surrogate, or -1.
func invalidAt(units []uint16) int {
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return i
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return i
		}
	}
	return -1
}

func decode(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	// Unpaired surrogates decode to U+FFFD; whole units never fail.
	out, _ := utf16le.NewDecoder().Bytes(b)
	return string(out)
}
