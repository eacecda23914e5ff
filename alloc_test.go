package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	a := NewArena(DefaultAllocator, 1024)
	defer a.Destroy()

	p := Alloc[int64](a)
	require.NotNil(t, p)
	require.Zero(t, *p)
	require.Zero(t, uintptr(unsafe.Pointer(p))%unsafe.Alignof(int64(0)))

	*p = 42
	require.Equal(t, int64(42), *p)
}

func TestAllocZeroesReusedMemory(t *testing.T) {
	a := NewArena(DefaultAllocator, 1024)
	defer a.Destroy()

	b := a.Push(8)
	for i := range b {
		b[i] = 0xFF
	}
	a.Reset()

	p := Alloc[uint64](a)
	require.Zero(t, *p)
}

func TestAllocUninitialized(t *testing.T) {
	a := NewArena(DefaultAllocator, 1024)
	defer a.Destroy()

	p := AllocUninitialized[uint32](a)
	require.NotNil(t, p)
	*p = 7
	require.Equal(t, uint32(7), *p)
}

func TestAllocSlice(t *testing.T) {
	a := NewArena(DefaultAllocator, 4096)
	defer a.Destroy()

	s := AllocSlice[int32](a, 100)
	require.Len(t, s, 100)
	for i := range s {
		s[i] = int32(i)
	}
	require.Equal(t, int32(99), s[99])

	require.Nil(t, AllocSlice[int32](a, 0))
	require.Nil(t, AllocSlice[int32](a, -1))
}

func TestAllocSliceZeroed(t *testing.T) {
	a := NewArena(DefaultAllocator, 4096)
	defer a.Destroy()

	b := a.Push(64)
	for i := range b {
		b[i] = 0xFF
	}
	a.Reset()

	s := AllocSliceZeroed[uint16](a, 32)
	for i, v := range s {
		require.Zero(t, v, "index %d", i)
	}
}

func TestAllocExhaustion(t *testing.T) {
	a := NewArena(DefaultAllocator, 16)
	defer a.Destroy()

	require.NotNil(t, Alloc[int64](a))
	require.NotNil(t, Alloc[int64](a))
	require.Nil(t, Alloc[int64](a))
	require.Nil(t, AllocSlice[byte](a, 1))
}
