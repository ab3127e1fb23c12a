//go:build windows

package align

import "unsafe"

// Platform matches MEMORY_ALLOCATION_ALIGNMENT: 16 bytes on 64-bit Windows, 8 on 32-bit.
const Platform = 2 * unsafe.Sizeof(uintptr(0))
