//go:build linux || darwin || windows

package mmap

import (
	"testing"
	"unsafe"
)

func TestAllocReadWrite(t *testing.T) {
	for _, size := range []int{1, 100, PageSize(), PageSize() + 1, 1 << 20} {
		data, err := Alloc(size)
		if err != nil {
			t.Fatalf("Alloc(%d): %v", size, err)
		}
		if len(data) != size {
			t.Fatalf("len mismatch: got %d want %d", len(data), size)
		}
		if uintptr(unsafe.Pointer(&data[0]))%uintptr(PageSize()) != 0 {
			t.Fatalf("Alloc(%d) is not page aligned", size)
		}
		for i := range data {
			if data[i] != 0 {
				t.Fatalf("byte %d not zeroed", i)
			}
		}
		data[0], data[size-1] = 0xde, 0xad
		if err := Free(data); err != nil {
			t.Fatalf("Free(%d): %v", size, err)
		}
	}
}

func TestAllocInvalidSize(t *testing.T) {
	if _, err := Alloc(0); err == nil {
		t.Fatal("expected an error for size 0")
	}
	if _, err := Alloc(-1); err == nil {
		t.Fatal("expected an error for a negative size")
	}
}

func TestFreeEmpty(t *testing.T) {
	if err := Free(nil); err != nil {
		t.Fatalf("Free(nil): %v", err)
	}
}

func TestFreeTwice(t *testing.T) {
	data, err := Alloc(PageSize())
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if err := Free(data); err != nil {
		t.Fatalf("first Free: %v", err)
	}
	if err := Free(data); err == nil {
		t.Fatal("expected an error freeing the same mapping twice")
	}
}
