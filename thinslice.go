package thinslice

import (
	"fmt"
	"iter"
)

// ThinSlice is a read-only, pointer-sized handle to a length-prefixed element
// array in arena memory. It is freely copyable: any number of ThinSlices may
// alias the same allocation, since none of them can write through it.
//
// The zero value is the "no slice" state (the handle analogue of a nil
// pointer); it reads as empty but is distinct from the canonical empty
// handle returned by Empty.
type ThinSlice[T any] struct {
	h *header
}

// Empty returns the canonical zero-length handle. It involves no allocation;
// every empty thin slice shares one static header.
func Empty[T any]() ThinSlice[T] {
	return ThinSlice[T]{h: &emptyHeader}
}

// Len returns the number of elements.
func (s ThinSlice[T]) Len() int {
	if s.h == nil {
		return 0
	}
	return int(s.h.len)
}

// IsEmpty reports whether the slice has no elements.
func (s ThinSlice[T]) IsEmpty() bool {
	return s.Len() == 0
}

// View returns the elements as a bounds-checked slice, or nil when empty.
// The result must be treated as read-only; writing through it breaks the
// aliasing contract for every other handle to the same allocation.
func (s ThinSlice[T]) View() []T {
	return view[T](s.h)
}

// At returns the element at index i. It panics if i is out of range.
func (s ThinSlice[T]) At(i int) T {
	return s.View()[i]
}

// All returns an iterator over index/element pairs in ascending order.
func (s ThinSlice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.View() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String formats the contents like a builtin slice, e.g. "[1 2 3]".
func (s ThinSlice[T]) String() string {
	return fmt.Sprint(s.View())
}
