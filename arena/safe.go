package arena

import (
	"sync"
	"unsafe"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena(chunkSize int) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize)}
}

// Alloc thread-safely allocates size bytes aligned to align.
// Returns nil if size is 0.
func (s *SafeArena) Alloc(size, align uintptr) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size, align)
}

// AllocBytes thread-safely allocates n bytes and returns a slice pointing to
// them. Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// EnsureCapacity thread-safely ensures the current chunk has at least n free bytes.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely resets allocation offsets to zero for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic allocation functions for SafeArena

// SafeNew thread-safely returns a pointer to a zeroed T stored inside the arena.
func SafeNew[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return New[T](s.a)
}

// SafeNewUninitialized thread-safely returns a *T without zeroing memory.
func SafeNewUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewUninitialized[T](s.a)
}

// SafeMakeSlice thread-safely allocates a slice of n elements of type T.
func SafeMakeSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MakeSlice[T](s.a, n)
}

// SafeMakeSliceZeroed thread-safely allocates a slice of n elements with
// zeroed memory.
func SafeMakeSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MakeSliceZeroed[T](s.a, n)
}
