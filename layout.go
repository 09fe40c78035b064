package thinslice

import (
	"math"
	"unsafe"

	"github.com/go-faster/errors"
)

// header stores the element count of a thin slice. It occupies the first
// bytes of the backing allocation; the element data follows at the offset
// returned by dataOffset.
type header struct {
	len uintptr
}

// emptyHeader is the canonical zero-length allocation. Every empty handle of
// every element type points here, so empty handles can be built and compared
// without touching an arena. The element offset is never applied to it
// because a zero-length view is never dereferenced.
var emptyHeader header

const headerSize = unsafe.Sizeof(header{})

// ErrLayoutOverflow is returned by SliceLayout when the requested length and
// element type combine to a byte size that cannot be allocated.
var ErrLayoutOverflow = errors.New("thinslice: layout exceeds maximum allocation size")

// dataOffset returns the byte offset from the start of a thin slice
// allocation to element 0. It depends only on T's alignment, not on the
// length, so it folds to a constant for any concrete T.
func dataOffset[T any]() uintptr {
	var zero T
	align := unsafe.Alignof(zero)
	return (headerSize + align - 1) &^ (align - 1)
}

// SliceLayout computes the size and alignment of the single allocation
// backing a thin slice of n elements of type T. It fails with
// ErrLayoutOverflow if n is negative or the total byte size would exceed the
// maximum allocatable object size.
func SliceLayout[T any](n int) (size, align uintptr, err error) {
	var zero T
	align = unsafe.Alignof(zero)
	if a := unsafe.Alignof(header{}); align < a {
		align = a
	}
	if n < 0 {
		return 0, 0, errors.Wrapf(ErrLayoutOverflow, "length %d", n)
	}
	off := dataOffset[T]()
	if es := unsafe.Sizeof(zero); es > 0 && uintptr(n) > (math.MaxInt-off)/es {
		return 0, 0, errors.Wrapf(ErrLayoutOverflow, "length %d of %d-byte elements", n, es)
	}
	return off + uintptr(n)*unsafe.Sizeof(zero), align, nil
}

// dataPtr returns the address of element 0 of h's allocation.
// h must head a real allocation laid out for T; it must not dangle.
func dataPtr[T any](h *header) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(h), dataOffset[T]()))
}

// view materializes the elements following h as a slice, or nil when empty.
// The empty case matters: emptyHeader is a bare header with no data region.
func view[T any](h *header) []T {
	if h == nil || h.len == 0 {
		return nil
	}
	return unsafe.Slice(dataPtr[T](h), h.len)
}
