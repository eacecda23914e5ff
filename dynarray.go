package mem

import "unsafe"

// dynArrayInitialCapacity is the element capacity every new array starts
// with. Capacity only ever doubles from here; it never shrinks.
const dynArrayInitialCapacity = 8

// DynArray is a contiguous growable sequence of T allocated through an
// Allocator capability, so it can live on the heap or inside an arena.
// All index-taking operations treat index == Len() as the append
// position for inserts and require index < Len() for removals; violating
// either is fatal. Not goroutine-safe. T must not contain Go pointers
// when the allocator hands out unscanned storage (see the package notes).
type DynArray[T any] struct {
	alloc    Allocator
	storage  []byte // the exact block held from alloc
	elems    []T    // full-capacity view of storage
	elemSize int
	length   int
}

// NewDynArray creates an empty array of T backed by alloc. Zero-size
// element types are a contract violation.
func NewDynArray[T any](alloc Allocator) *DynArray[T] {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	assertf(elemSize > 0, "dynarray: zero-size element type")
	d := &DynArray[T]{alloc: alloc, elemSize: elemSize}
	d.setStorage(alloc.Allocate(elemSize*dynArrayInitialCapacity), dynArrayInitialCapacity)
	return d
}

func (d *DynArray[T]) setStorage(block []byte, capacity int) {
	d.storage = block
	d.elems = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(block))), capacity)
}

// Destroy returns the storage block to the allocator. Any subsequent
// operation other than Len and Cap panics.
func (d *DynArray[T]) Destroy() {
	d.assertAlive()
	d.alloc.Free(d.storage)
	d.storage = nil
	d.elems = nil
	d.length = 0
}

func (d *DynArray[T]) assertAlive() {
	assertf(d != nil, "dynarray: nil array")
	assertf(d.storage != nil, "dynarray: use after Destroy()")
}

// Len returns the number of live elements. A nil array has length 0.
func (d *DynArray[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.length
}

// Cap returns the current element capacity.
func (d *DynArray[T]) Cap() int {
	if d == nil {
		return 0
	}
	return len(d.elems)
}

// Clear drops every element without releasing capacity.
func (d *DynArray[T]) Clear() {
	d.assertAlive()
	d.length = 0
}

// Elements returns a view of the live elements. The view is invalidated
// by any operation that grows the array.
func (d *DynArray[T]) Elements() []T {
	d.assertAlive()
	return d.elems[:d.length]
}

// ensureCapacity doubles the capacity until extra more elements fit, then
// moves the storage block through the allocator's Reallocate.
func (d *DynArray[T]) ensureCapacity(extra int) {
	capacity := len(d.elems)
	if capacity >= d.length+extra {
		return
	}
	for capacity < d.length+extra {
		capacity *= 2
	}
	d.setStorage(d.alloc.Reallocate(capacity*d.elemSize, d.storage), capacity)
}

// InsertSlice inserts items at index, shifting every element at and after
// index right by len(items). index == Len() appends. Order-preserving.
func (d *DynArray[T]) InsertSlice(index int, items []T) {
	d.insert(index, items, len(items))
}

// InsertZero inserts count zero-valued elements at index.
func (d *DynArray[T]) InsertZero(index, count int) {
	assertf(count >= 0, "dynarray: negative count %d", count)
	d.insert(index, nil, count)
}

func (d *DynArray[T]) insert(index int, items []T, count int) {
	d.assertAlive()
	assertf(index >= 0 && index <= d.length, "dynarray: index %d out of bounds (length %d)", index, d.length)
	d.ensureCapacity(count)
	copy(d.elems[index+count:d.length+count], d.elems[index:d.length])
	if items == nil {
		clear(d.elems[index : index+count])
	} else {
		copy(d.elems[index:], items[:count])
	}
	d.length += count
}

// RemoveSlice removes count elements starting at index, shifting the tail
// left. The removed elements are copied into out when out is non-nil.
// Order-preserving.
func (d *DynArray[T]) RemoveSlice(index, count int, out []T) {
	d.assertAlive()
	assertf(count >= 0, "dynarray: negative count %d", count)
	assertf(index >= 0 && index < d.length, "dynarray: index %d out of bounds (length %d)", index, d.length)
	assertf(index+count <= d.length, "dynarray: count %d out of bounds at index %d (length %d)", count, index, d.length)
	if out != nil {
		copy(out, d.elems[index:index+count])
	}
	copy(d.elems[index:], d.elems[index+count:d.length])
	d.length -= count
}

// Insert inserts v at index, shifting later elements right.
func (d *DynArray[T]) Insert(index int, v T) {
	var tmp [1]T
	tmp[0] = v
	d.insert(index, tmp[:], 1)
}

// Remove removes and returns the element at index.
func (d *DynArray[T]) Remove(index int) T {
	var out [1]T
	d.RemoveSlice(index, 1, out[:])
	return out[0]
}

// InsertFast writes v at index in O(1), bumping the current occupant of
// the slot to the end of the array. Does not preserve element order.
func (d *DynArray[T]) InsertFast(index int, v T) {
	d.assertAlive()
	assertf(index >= 0 && index <= d.length, "dynarray: index %d out of bounds (length %d)", index, d.length)
	d.ensureCapacity(1)
	d.elems[d.length] = d.elems[index]
	d.elems[index] = v
	d.length++
}

// RemoveFast removes and returns the element at index in O(1) by moving
// the last element into its slot (swap-remove). Does not preserve element
// order.
func (d *DynArray[T]) RemoveFast(index int) T {
	d.assertAlive()
	assertf(index >= 0 && index < d.length, "dynarray: index %d out of bounds (length %d)", index, d.length)
	out := d.elems[index]
	d.elems[index] = d.elems[d.length-1]
	d.length--
	return out
}

// Push appends v.
func (d *DynArray[T]) Push(v T) {
	d.assertAlive()
	d.ensureCapacity(1)
	d.elems[d.length] = v
	d.length++
}

// Pop removes and returns the last element. Popping an empty array is a
// contract violation.
func (d *DynArray[T]) Pop() T {
	d.assertAlive()
	assertf(d.length > 0, "dynarray: pop on empty array")
	d.length--
	return d.elems[d.length]
}

// PushSlice appends items in order.
func (d *DynArray[T]) PushSlice(items []T) {
	d.InsertSlice(d.Len(), items)
}

// PopSlice removes the last count elements, copying them into out in
// their original order when out is non-nil.
func (d *DynArray[T]) PopSlice(count int, out []T) {
	d.assertAlive()
	assertf(count >= 0 && count <= d.length, "dynarray: pop count %d out of bounds (length %d)", count, d.length)
	d.RemoveSlice(d.length-count, count, out)
}
