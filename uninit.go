package thinslice

// Uninit is a thin slice whose slots have been allocated but not yet
// initialized. It exists for incremental in-place construction: allocate
// once, write each slot exactly once, then promote with AssumeInit. Unlike
// ThinSliceMut, reading from it is never legal.
type Uninit[T any] struct {
	h *header
}

// NewUninit allocates a thin slice of n uninitialized slots. No element is
// written; the slots hold whatever bytes the arena handed out.
func NewUninit[T any](a Allocator, n int) Uninit[T] {
	s := NewWithInit(a, n, func([]T) {
		// Slots are deliberately left unwritten.
	})
	return Uninit[T]{h: s.h}
}

// Len returns the number of slots.
func (u Uninit[T]) Len() int {
	if u.h == nil {
		return 0
	}
	return int(u.h.len)
}

// Set writes v into slot i. It panics if i is out of range.
func (u Uninit[T]) Set(i int, v T) {
	view[T](u.h)[i] = v
}

// MutView returns the slots as a writable slice for bulk initialization.
// Slots must only be written through it, never read, until AssumeInit.
func (u Uninit[T]) MutView() []T {
	return view[T](u.h)
}

// AssumeInit reinterprets the handle as fully initialized.
//
// The caller must have written every one of the Len slots first. The library
// cannot check this; promoting with unwritten slots leaves garbage elements
// observable through every view of the result, which is undefined behavior.
func (u Uninit[T]) AssumeInit() ThinSliceMut[T] {
	return ThinSliceMut[T]{h: u.h}
}
