package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestHeapAllocatorAlignment(t *testing.T) {
	var h HeapAllocator
	for _, size := range []int{0, 1, 7, 64, 1000} {
		b := h.Allocate(size)
		require.Len(t, b, size)
		if size > 0 {
			addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
			require.Zero(t, addr%blockAlignment, "size=%d", size)
		}
	}
}

func TestHeapAllocatorReallocate(t *testing.T) {
	var h HeapAllocator

	b := h.Allocate(16)
	for i := range b {
		b[i] = byte(i)
	}

	grown := h.Reallocate(32, b)
	require.Len(t, grown, 32)
	for i := 0; i < 16; i++ {
		require.Equal(t, byte(i), grown[i])
	}

	shrunk := h.Reallocate(4, grown)
	require.Equal(t, []byte{0, 1, 2, 3}, shrunk)

	same := h.Reallocate(4, shrunk)
	require.Equal(t, sliceAddr(shrunk), sliceAddr(same))
}

func TestHeapAllocatorNegativeSizePanics(t *testing.T) {
	var h HeapAllocator
	require.Panics(t, func() { h.Allocate(-1) })
}

func TestDefaultAllocator(t *testing.T) {
	b := DefaultAllocator.Allocate(8)
	require.Len(t, b, 8)
	DefaultAllocator.Free(b)
}
