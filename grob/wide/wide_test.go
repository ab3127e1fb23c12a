package wide

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/grobkit/grob"
	"github.com/joshuapare/grobkit/internal/testutil"
)

func units(s string) []uint16 {
	u, err := Encode(s)
	if err != nil {
		panic(err)
	}
	return u
}

func frozen(t *testing.T, u []uint16) *grob.FrozenBuffer[uint16] {
	t.Helper()
	g := grob.New[uint16](grob.NewFixedSize(2*len(u)+int(grob.Alignment)), grob.PolicyFunc(
		func(_ int, _, desired uint32) uint32 { return desired }), nil)
	arg := g.Argument()
	copy(arg.Elems(), u)
	arg.SetNeededSize(uint32(len(u)))
	arg.Commit()
	return g.Freeze()
}

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want []uint16
	}{
		{"", []uint16{0}},
		{"abc", []uint16{'a', 'b', 'c', 0}},
		{"é€", []uint16{0xE9, 0x20AC, 0}},
		{"𝄞", []uint16{0xD834, 0xDD1E, 0}},
		{"a\xffb", []uint16{'a', 0xFFFD, 'b', 0}},
	}
	for _, tt := range tests {
		got, err := Encode(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "Encode(%q)", tt.in)
	}
}

func TestEncodeEmbeddedNUL(t *testing.T) {
	_, err := Encode("a\x00b")
	require.ErrorIs(t, err, ErrEmbeddedNUL)
}

func TestToString(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"empty", nil, ""},
		{"terminator only", []uint16{0}, ""},
		{"terminated", units("DOMAIN\\user"), "DOMAIN\\user"},
		{"unterminated", []uint16{'h', 'i'}, "hi"},
		{"one terminator stripped", []uint16{'a', 0, 0}, "a\x00"},
		{"surrogate pair", units("𝄞 clef"), "𝄞 clef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frozen(t, tt.units)
			got, err := ToString(f)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, ToLossyString(f))
			require.Equal(t, tt.want, ToPath(f))
		})
	}
}

func TestToStringInvalid(t *testing.T) {
	tests := []struct {
		name   string
		units  []uint16
		offset int
		lossy  string
	}{
		{"lone high", []uint16{'H', 0xD800, 'I', 0}, 1, "H\uFFFDI"},
		{"lone low at end", []uint16{'A', 0xDC00}, 1, "A\uFFFD"},
		{"high at end", []uint16{'A', 'B', 0xDBFF, 0}, 2, "AB\uFFFD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frozen(t, tt.units)
			_, err := ToString(f)
			var invalid *InvalidUTF16Error
			require.True(t, errors.As(err, &invalid))
			require.Equal(t, tt.offset, invalid.Offset)
			require.Equal(t, trimNUL(tt.units), invalid.Units)
			require.Contains(t, err.Error(), "unpaired surrogate")
			require.Equal(t, tt.lossy, ToLossyString(f))
		})
	}
}

func TestDecode(t *testing.T) {
	require.Equal(t, "abc", Decode([]uint16{'a', 'b', 'c', 0, 'x'}))
	require.Equal(t, "abc", Decode([]uint16{'a', 'b', 'c'}))
	require.Equal(t, "", Decode(nil))
}

func TestString(t *testing.T) {
	codes := testutil.Codes()
	name := units("CORP\\" + strings.Repeat("u", 300))
	call := testutil.ErrorCodeCall(name, codes)

	got, err := String(call.Invoke, nil)
	require.NoError(t, err)
	require.Equal(t, "CORP\\"+strings.Repeat("u", 300), got)
	require.Equal(t, 2, call.Calls)
	require.Equal(t, uint32(CapacityForNames/2), call.Offered[0])
	// 306 units need 612 bytes; one spare element and nibble rounding give 624.
	require.Equal(t, uint32(312), call.Offered[1])
}

func TestStringInvalid(t *testing.T) {
	call := testutil.ErrorCodeCall([]uint16{'x', 0xD800, 0}, testutil.Codes())
	_, err := String(call.Invoke, nil)
	var invalid *InvalidUTF16Error
	require.ErrorAs(t, err, &invalid)

	call = testutil.ErrorCodeCall([]uint16{'x', 0xD800, 0}, testutil.Codes())
	got, err := LossyString(call.Invoke, nil)
	require.NoError(t, err)
	require.Equal(t, "x\uFFFD", got)
}

func TestPath(t *testing.T) {
	codes := testutil.Codes()
	long := `C:\` + strings.Repeat(`segment\`, 100) + "file.txt"
	call := testutil.StoredSizeCall(units(long), codes)
	alloc := testutil.NewCountingAllocator()

	got, err := Path(call.Invoke, &grob.Options{Allocator: alloc})
	require.NoError(t, err)
	require.Equal(t, long, got)
	// 811 units: each grow doubles the nibble-rounded capacity.
	require.Equal(t, []uint32{uint32(CapacityForPaths / 2), 528, 1056}, call.Offered)
	require.Zero(t, alloc.Live())
}

func TestPathNoData(t *testing.T) {
	call := testutil.StoredSizeCall[uint16](nil, testutil.Codes())
	got, err := Path(call.Invoke, nil)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, 1, call.Calls)
}

func TestDecodeANSI(t *testing.T) {
	got, err := DecodeANSI([]byte{'c', 'a', 'f', 0xE9, ' ', 0x80, 0, 'x'}, nil)
	require.NoError(t, err)
	require.Equal(t, "café €", got)

	got, err = DecodeANSI([]byte{0xE9}, charmap.CodePage437)
	require.NoError(t, err)
	require.Equal(t, "Θ", got)

	got, err = DecodeANSI(nil, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
