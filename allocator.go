package mem

import "unsafe"

// blockAlignment is the guaranteed alignment of blocks returned by the
// built-in allocators (one cache line).
const blockAlignment = 64

// Allocator is the capability every memory-consuming type in this package
// is written against. The slice returned by Allocate and Reallocate is
// the block: the exact same slice must be handed back to Reallocate and
// Free, since its length is the only size bookkeeping the allocator sees.
// Allocator values are cheap to copy and do not own the memory they
// manage.
type Allocator interface {
	// Allocate returns a block of exactly size bytes.
	Allocate(size int) []byte

	// Reallocate returns a block of size bytes containing the first
	// min(size, len(b)) bytes of b. The result may or may not alias b.
	Reallocate(size int, b []byte) []byte

	// Free releases a block previously returned by Allocate or
	// Reallocate.
	Free(b []byte)
}

// DefaultAllocator is a ready-to-use heap-backed Allocator and can be
// used anywhere an Allocator is required.
var DefaultAllocator Allocator = HeapAllocator{}

// HeapAllocator allocates blocks from the Go heap, aligned to
// blockAlignment. Free is a no-op; the garbage collector reclaims a block
// once nothing references it.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(size int) []byte {
	assertf(size >= 0, "allocator: negative size %d", size)
	buf := make([]byte, size+blockAlignment) // padding for alignment
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	shift := int(alignUp(addr, blockAlignment) - addr)
	return buf[shift : shift+size : shift+size]
}

func (h HeapAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	nb := h.Allocate(size)
	copy(nb, b)
	return nb
}

func (HeapAllocator) Free(b []byte) {}

func isPowerOfTwo(v uintptr) bool {
	return v&(v-1) == 0
}

func alignUp(v, align uintptr) uintptr {
	mask := align - 1
	return (v + mask) &^ mask
}
