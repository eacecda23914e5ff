//go:build !unix

package mem

// MmapAllocator falls back to the heap on platforms without mmap.
type MmapAllocator struct{}

func (MmapAllocator) Allocate(size int) []byte {
	return HeapAllocator{}.Allocate(size)
}

func (MmapAllocator) Reallocate(size int, b []byte) []byte {
	return HeapAllocator{}.Reallocate(size, b)
}

func (MmapAllocator) Free(b []byte) {
	HeapAllocator{}.Free(b)
}
