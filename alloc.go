package mem

import "unsafe"

// Alloc returns a pointer to a zeroed T pushed onto the arena, naturally
// aligned for T. Returns nil if the arena cannot fit it.
func Alloc[T any](a *Arena) *T {
	var zero T
	b := a.PushAligned(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocUninitialized returns a *T located in the arena without zeroing
// memory. Faster than Alloc, but the contents are whatever the arena held
// before; initialize before use.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	b := a.PushAligned(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil if n <= 0 or the arena
// cannot fit the slice.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.PushAligned(int(unsafe.Sizeof(zero))*n, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. Slower than AllocSlice but ensures clean initialization.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	if s != nil {
		clear(s)
	}
	return s
}
