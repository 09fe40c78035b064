package thinslice

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/go-faster/errors"
	"golang.org/x/exp/constraints"
)

// ThinSliceMut is the exclusive, writable handle to a thin slice. It has the
// same one-pointer representation as ThinSlice but must never be duplicated:
// two live writable handles over the same bytes would allow conflicting
// writes and invalidate outstanding views. Pass it by pointer, or give it up
// with IntoShared. To obtain a second independent slice with the same
// contents, run CopyFrom or CloneFrom on the current View.
type ThinSliceMut[T any] struct {
	h *header
}

// Cloner is implemented by element types with a deep-copy operation.
// CloneFrom and FillClone use it instead of plain assignment.
type Cloner[T any] interface {
	Clone() T
}

// NewWithInit allocates a thin slice of n elements and runs init against the
// uninitialized data region. This is the single unsafe primitive every other
// constructor funnels through.
//
// The dst slice handed to init views raw, uninitialized arena memory; init
// must write every element before returning. Reading a slot before writing
// it, or leaving one unwritten, is undefined behavior.
//
// If n is 0 the empty singleton is returned: no allocation is made and init
// is not called. NewWithInit panics with ErrLayoutOverflow if n is negative
// or the total byte size would overflow.
func NewWithInit[T any](a Allocator, n int, init func(dst []T)) ThinSliceMut[T] {
	if n == 0 {
		return ThinSliceMut[T]{h: &emptyHeader}
	}
	size, align, err := SliceLayout[T](n)
	if err != nil {
		panic(err)
	}
	h := (*header)(a.Alloc(size, align))
	h.len = uintptr(n)
	init(unsafe.Slice(dataPtr[T](h), n))
	return ThinSliceMut[T]{h: h}
}

// CopyFrom allocates a thin slice holding a bulk copy of src.
func CopyFrom[T any](a Allocator, src []T) ThinSliceMut[T] {
	return NewWithInit(a, len(src), func(dst []T) {
		copy(dst, src)
	})
}

// CloneFrom allocates a thin slice whose element i is src[i].Clone(),
// invoked in ascending index order.
func CloneFrom[T Cloner[T]](a Allocator, src []T) ThinSliceMut[T] {
	return NewWithInit(a, len(src), func(dst []T) {
		for i := range src {
			dst[i] = src[i].Clone()
		}
	})
}

// Fill allocates a thin slice of n elements, each a copy of v.
func Fill[T any](a Allocator, n int, v T) ThinSliceMut[T] {
	return FromFunc(a, n, func(int) T { return v })
}

// FillClone allocates a thin slice of n elements, each an independent
// v.Clone().
func FillClone[T Cloner[T]](a Allocator, n int, v T) ThinSliceMut[T] {
	return FromFunc(a, n, func(int) T { return v.Clone() })
}

// Zeroed allocates a thin slice of n elements set to T's zero value.
func Zeroed[T any](a Allocator, n int) ThinSliceMut[T] {
	return NewWithInit(a, n, func(dst []T) {
		clear(dst)
	})
}

// FromFunc allocates a thin slice of n elements where element i is f(i).
// f is called exactly once per index, in ascending order.
func FromFunc[T any](a Allocator, n int, f func(i int) T) ThinSliceMut[T] {
	return NewWithInit(a, n, func(dst []T) {
		for i := range dst {
			dst[i] = f(i)
		}
	})
}

// FromSeq allocates a thin slice of exactly n elements drained from seq.
// Iteration stops as soon as n elements have been taken; a longer sequence is
// not an error. A sequence that yields fewer than n elements violates the
// caller's exact-size contract and makes FromSeq panic, since the alternative
// is returning a handle with an uninitialized tail.
func FromSeq[T any](a Allocator, n int, seq iter.Seq[T]) ThinSliceMut[T] {
	return NewWithInit(a, n, func(dst []T) {
		i := 0
		for v := range seq {
			dst[i] = v
			i++
			if i == n {
				return
			}
		}
		panic(errors.Errorf("thinslice: sequence yielded %d of %d promised elements", i, n))
	})
}

// FromRange allocates a thin slice holding the half-open range [lo, hi).
// An empty range yields the empty singleton.
func FromRange[T constraints.Integer](a Allocator, lo, hi T) ThinSliceMut[T] {
	n := 0
	if hi > lo {
		n = int(hi - lo)
	}
	return FromFunc(a, n, func(i int) T { return lo + T(i) })
}

// Len returns the number of elements.
func (s ThinSliceMut[T]) Len() int {
	if s.h == nil {
		return 0
	}
	return int(s.h.len)
}

// IsEmpty reports whether the slice has no elements.
func (s ThinSliceMut[T]) IsEmpty() bool {
	return s.Len() == 0
}

// View returns the elements as a read-only slice, or nil when empty.
func (s ThinSliceMut[T]) View() []T {
	return view[T](s.h)
}

// MutView returns the elements as a writable slice, or nil when empty.
// The result aliases the allocation; no shared handle to the same slice may
// be read while writes through it are in flight.
func (s ThinSliceMut[T]) MutView() []T {
	return view[T](s.h)
}

// At returns the element at index i. It panics if i is out of range.
func (s ThinSliceMut[T]) At(i int) T {
	return s.View()[i]
}

// Set stores v at index i. It panics if i is out of range.
func (s ThinSliceMut[T]) Set(i int, v T) {
	s.MutView()[i] = v
}

// All returns an iterator over index/element pairs in ascending order.
func (s ThinSliceMut[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.View() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Shared borrows the slice as a read-only handle. The result aliases the
// same allocation, so the caller must not write through s (or hand out its
// MutView) while the borrowed handle is in use.
func (s *ThinSliceMut[T]) Shared() ThinSlice[T] {
	return ThinSlice[T]{h: s.h}
}

// IntoShared consumes the mutable handle and returns a read-only handle
// valid for the allocation's full lifetime. The receiver must not be used
// afterwards; this is the one-way demotion out of exclusive access.
func (s ThinSliceMut[T]) IntoShared() ThinSlice[T] {
	return ThinSlice[T]{h: s.h}
}

// String formats the contents like a builtin slice, e.g. "[1 2 3]".
func (s ThinSliceMut[T]) String() string {
	return fmt.Sprint(s.View())
}
