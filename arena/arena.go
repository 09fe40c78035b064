// Chunked bump allocation. Allocations are handed out sequentially from
// large chunks, stay valid until Release(), and are reclaimed all at once
// with Reset() or Release().
package arena

import "unsafe"

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// ptrAlign is the strictest alignment AllocBytes guarantees.
const ptrAlign = unsafe.Sizeof(uintptr(0))

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump allocator. Not goroutine-safe by default.
// Use SafeArena for concurrent access.
type Arena struct {
	chunks       []chunk
	chunkSize    int
	currentChunk *chunk
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Alloc returns a pointer to size bytes of uninitialized arena memory whose
// address is a multiple of align. align must be a power of two. The memory is
// valid until Release(); the caller must keep the arena reachable while the
// pointer is in use. Returns nil if size is 0.
func (a *Arena) Alloc(size, align uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}

	// Fast path: bump within the cached current chunk.
	if c := a.currentChunk; c != nil {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
		off := alignUp(base+c.offset, align) - base
		if off+size <= uintptr(len(c.buf)) {
			c.offset = off + size
			return unsafe.Pointer(&c.buf[off])
		}
	}

	return a.allocSlow(size, align)
}

// allocSlow handles allocation when the fast path fails.
func (a *Arena) allocSlow(size, align uintptr) unsafe.Pointer {
	a.panicIfReleased()

	// A fresh chunk of size+align bytes always contains an aligned window of
	// size bytes.
	a.grow(int(size + align))

	c := a.currentChunk
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignUp(base, align) - base
	c.offset = off + size
	return unsafe.Pointer(&c.buf[off])
}

// AllocBytes returns a []byte slice pointing into the arena's backing chunk,
// aligned to the pointer size. The caller must ensure the arena remains
// reachable while the returned slice is in use. Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := a.Alloc(uintptr(n), ptrAlign)
	return unsafe.Slice((*byte)(p), n)
}

// EnsureCapacity ensures the current chunk has at least n free bytes.
// If not, it grows the arena with a new chunk.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := a.currentChunk
	if c == nil {
		a.grow(n)
		return
	}
	off := alignUp(c.offset, ptrAlign)
	if off+uintptr(n) > uintptr(len(c.buf)) {
		a.grow(n)
	}
}

// Reset resets allocation offsets to zero but keeps allocated chunks for
// reuse. This provides O(1) cleanup for arena reuse. Any pointer previously
// returned by Alloc becomes invalid.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.currentChunk = &a.chunks[0]
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena) Release() {
	a.chunks = nil
	a.currentChunk = nil
}

// grow appends a new chunk of at least min bytes.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}

// alignUp rounds n up to the next multiple of align (a power of two).
func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
