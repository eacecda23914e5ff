package mem

import "unsafe"

// Arena is a fixed-capacity bump allocator: every push advances a single
// watermark and memory is reclaimed only in bulk via Reset, Scope.End or
// Destroy. Not goroutine-safe.
type Arena struct {
	alloc   Allocator // nil when the arena wraps caller-owned storage
	mem     []byte
	pos     int // next free offset
	lastPos int // offset of the most recent push
	scopes  int // open scope count, enforces LIFO Scope.End
}

// NewArena creates an arena that owns a capacity-byte block obtained from
// alloc. Destroy returns the block to alloc.
func NewArena(alloc Allocator, capacity int) *Arena {
	assertf(capacity >= 0, "arena: negative capacity %d", capacity)
	return &Arena{alloc: alloc, mem: alloc.Allocate(capacity)}
}

// NewArenaFromBuffer carves an arena out of caller-owned storage,
// typically a stack or global buffer. The arena never frees buf and
// Destroy must not be called; abandon the arena or Reset it instead.
func NewArenaFromBuffer(buf []byte) *Arena {
	return &Arena{mem: buf}
}

// Destroy returns the backing block to the arena's allocator and makes
// the arena unusable. Destroying a buffer-backed arena is a contract
// violation.
func (a *Arena) Destroy() {
	a.assertAlive()
	assertf(a.alloc != nil, "arena: Destroy on caller-owned buffer")
	a.alloc.Free(a.mem)
	a.mem = nil
	a.pos, a.lastPos, a.scopes = 0, 0, 0
}

func (a *Arena) assertAlive() {
	assertf(a.mem != nil, "arena: use after Destroy()")
}

func (a *Arena) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.mem)))
}

// PushAligned returns a size-byte slice whose base address is a multiple
// of align, or nil if the request does not fit in the remaining capacity.
// Exhaustion is the only soft failure in this package; callers must check
// for it. align must be a positive power of two.
func (a *Arena) PushAligned(size, align int) []byte {
	a.assertAlive()
	assertf(size >= 0, "arena: negative push size %d", size)
	assertf(align > 0 && isPowerOfTwo(uintptr(align)), "arena: align %d is not a power of two", align)
	base := a.base()
	aligned := alignUp(base+uintptr(a.pos), uintptr(align))
	pos := int(aligned - base)
	if pos+size > len(a.mem) {
		return nil
	}
	a.lastPos = pos
	a.pos = pos + size
	return a.mem[pos:a.pos:a.pos]
}

// Push is PushAligned with pointer alignment.
func (a *Arena) Push(size int) []byte {
	return a.PushAligned(size, int(unsafe.Sizeof(uintptr(0))))
}

// Reset rewinds the watermark to zero without releasing the backing
// block. Every outstanding allocation and open scope is invalidated;
// callers must not touch slices pushed before the reset.
func (a *Arena) Reset() {
	a.assertAlive()
	a.pos, a.lastPos, a.scopes = 0, 0, 0
}

// Scope is a saved watermark. Ending it rewinds the arena, freeing
// everything pushed since Begin. Scopes nest and must end in strict
// reverse order of creation; ending one out of order, or twice, is a
// contract violation.
type Scope struct {
	arena   *Arena
	pos     int
	lastPos int
	depth   int
}

// Begin snapshots the current watermark.
func (a *Arena) Begin() Scope {
	a.assertAlive()
	a.scopes++
	return Scope{arena: a, pos: a.pos, lastPos: a.lastPos, depth: a.scopes}
}

// End restores the arena to the watermark captured by Begin.
func (s *Scope) End() {
	assertf(s.arena != nil, "arena: scope ended twice")
	a := s.arena
	a.assertAlive()
	assertf(s.depth == a.scopes, "arena: scope ended out of order")
	a.pos, a.lastPos = s.pos, s.lastPos
	a.scopes--
	s.arena = nil
}

// Allocator exposes the arena as an Allocator: Allocate is Push, Free is
// a no-op (arenas reclaim only in bulk), and Reallocate grows the most
// recent allocation in place when there is room. Exhausting the arena
// through the adapter is fatal; use Push directly for the soft-failure
// path.
func (a *Arena) Allocator() Allocator {
	return arenaAllocator{a}
}

type arenaAllocator struct {
	arena *Arena
}

func (aa arenaAllocator) Allocate(size int) []byte {
	a := aa.arena
	b := a.Push(size)
	assertf(b != nil, "arena: exhausted allocating %d bytes (%d of %d in use)", size, a.pos, len(a.mem))
	return b
}

func (aa arenaAllocator) Reallocate(size int, b []byte) []byte {
	if size <= len(b) {
		return b[:size:size]
	}
	a := aa.arena
	// Resize in place if b is the most recent push: rewind so the re-push
	// lands at the same offset and extends the slot instead of copying.
	if len(b) > 0 && uintptr(unsafe.Pointer(unsafe.SliceData(b))) == a.base()+uintptr(a.lastPos) {
		a.pos = a.lastPos
	}
	nb := aa.Allocate(size)
	copy(nb, b)
	return nb
}

func (arenaAllocator) Free(b []byte) {}
