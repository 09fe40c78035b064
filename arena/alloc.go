package arena

import (
	"runtime"
	"unsafe"
)

// New returns a pointer to a zeroed T stored inside the arena.
// The returned pointer is valid as long as the arena hasn't been released.
func New[T any](a *Arena) *T {
	p := NewUninitialized[T](a)
	var zero T
	*p = zero
	return p
}

// NewUninitialized returns a *T located in the arena without zeroing memory.
// This is faster than New but the memory contents are undefined.
// The caller must fully initialize the value before reading it.
func NewUninitialized[T any](a *Arena) *T {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return new(T)
	}
	return (*T)(a.Alloc(size, unsafe.Alignof(zero)))
}

// MakeSlice allocates a slice of n elements of type T inside the arena.
// The slice elements are not initialized (contain garbage data).
// Returns nil if n <= 0.
func MakeSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return make([]T, n)
	}
	p := a.Alloc(size*uintptr(n), unsafe.Alignof(zero))
	return unsafe.Slice((*T)(p), n)
}

// MakeSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. This is slower than MakeSlice but ensures clean initialization.
func MakeSliceZeroed[T any](a *Arena, n int) []T {
	s := MakeSlice[T](a, n)
	clear(s)
	return s
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This is useful to prevent the arena from being garbage collected
// while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
