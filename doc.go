// Package mem provides low-level memory-management building blocks: an
// allocator capability, a fixed-capacity bump arena with scoped rollback,
// and a growable array that allocates through the capability.
//
// # Overview
//
// Everything in this package is written against the three-operation
// Allocator interface (Allocate/Reallocate/Free). The supplied
// implementations are HeapAllocator (Go heap) and MmapAllocator
// (anonymous pages); an Arena can itself act as an Allocator via its
// adapter, so transient arrays can live inside an arena and be discarded
// en masse.
//
// # Basic Usage
//
//	a := mem.NewArena(mem.DefaultAllocator, 1<<16)
//	defer a.Destroy()
//
//	// Allocate raw bytes or typed values
//	buf := a.Push(1024)
//	ptr := mem.Alloc[MyStruct](a)
//	ints := mem.AllocSlice[int64](a, 100)
//
//	// Bulk-free everything allocated since Begin
//	s := a.Begin()
//	tmp := a.Push(4096)
//	_ = tmp
//	s.End()
//
//	// Grow an array inside the arena
//	arr := mem.NewDynArray[int32](a.Allocator())
//	arr.Push(42)
//
// # Error Model
//
// Contract violations (out-of-bounds index, popping an empty array,
// non-power-of-two alignment, use after Destroy) report a Fatal event
// through the logging package and panic; they are programmer errors, not
// conditions to handle. The single recoverable failure is arena
// exhaustion: Push and PushAligned return nil when the request does not
// fit, and callers must check for it.
//
// # Important Notes
//
//   - Nothing in this package is goroutine-safe; confine each arena and
//     array to one goroutine or wrap access yourself.
//   - Arena memory is only reclaimed in bulk: Reset, Scope.End, Destroy.
//     Pointers handed out before any of those must not be used after.
//   - DynArray element types must not contain Go pointers when backed by
//     HeapAllocator or MmapAllocator blocks; the collector does not scan
//     raw byte storage.
package mem
