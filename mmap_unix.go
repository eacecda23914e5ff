//go:build unix

package mem

import "golang.org/x/sys/unix"

// MmapAllocator allocates blocks as anonymous private mappings, keeping
// them entirely outside the Go heap. Blocks are page-aligned. A failed
// mapping is fatal; the capability has no out-of-memory path.
type MmapAllocator struct{}

func (MmapAllocator) Allocate(size int) []byte {
	assertf(size >= 0, "allocator: negative size %d", size)
	if size == 0 {
		return make([]byte, 0)
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		fatalf("allocator: mmap %d bytes: %v", size, err)
	}
	return b
}

func (m MmapAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	nb := m.Allocate(size)
	copy(nb, b)
	m.Free(b)
	return nb
}

func (MmapAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	if err := unix.Munmap(b); err != nil {
		fatalf("allocator: munmap: %v", err)
	}
}
