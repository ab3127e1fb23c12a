package align

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestUp(t *testing.T) {
	tests := []struct {
		n, a, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{1, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Up(tt.n, tt.a), "Up(%d, %d)", tt.n, tt.a)
	}
}

func TestSliceIsAligned(t *testing.T) {
	region := make([]byte, 256)
	for shift := 0; shift < 32; shift++ {
		b := region[shift:]
		aligned, off := Slice(b, Platform)
		require.NotNil(t, aligned)
		require.Less(t, off, int(Platform))
		require.Equal(t, len(b)-off, len(aligned))
		require.True(t, Is(unsafe.Pointer(&aligned[0]), Platform), "shift %d", shift)
	}
}

func TestSliceTooSmall(t *testing.T) {
	aligned, _ := Slice(nil, Platform)
	require.Nil(t, aligned)

	region := make([]byte, 64)
	// Find a one-byte window that starts on an unaligned address.
	for i := 0; i < int(Platform); i++ {
		b := region[i : i+1]
		if Is(unsafe.Pointer(&b[0]), Platform) {
			continue
		}
		aligned, off := Slice(b, Platform)
		require.Nil(t, aligned)
		require.GreaterOrEqual(t, off, 1)
		return
	}
	t.Fatal("no unaligned window found")
}

func TestOffset(t *testing.T) {
	region := make([]byte, 64)
	base := unsafe.Pointer(&region[0])
	off := Offset(base, Platform)
	require.Less(t, off, Platform)
	require.True(t, Is(unsafe.Add(base, off), Platform))
}
