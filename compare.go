package thinslice

import (
	"unsafe"

	"github.com/go-faster/city"
	"golang.org/x/exp/constraints"
)

// Comparison, ordering and hashing are content-based: handles compare equal
// when their lengths match and their elements match pointwise, regardless of
// which arena or constructor produced them. Allocation identity is never
// significant, except that all empty handles share one address.
//
// These are free functions rather than methods because methods cannot narrow
// a type parameter; comparing a ThinSliceMut goes through Shared().

// Equal reports whether a and b have the same length and pointwise-equal
// elements.
func Equal[T comparable](a, b ThinSlice[T]) bool {
	if a.h == b.h {
		return true
	}
	av, bv := a.View(), b.View()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equivalence.
func EqualFunc[T any](a, b ThinSlice[T], eq func(T, T) bool) bool {
	av, bv := a.View(), b.View()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if !eq(av[i], bv[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: elementwise, with a shorter
// prefix ordering before a longer one. It returns -1, 0 or 1.
func Compare[T constraints.Ordered](a, b ThinSlice[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b ThinSlice[T], cmp func(T, T) int) int {
	av, bv := a.View(), b.View()
	for i := 0; i < len(av) && i < len(bv); i++ {
		if c := cmp(av[i], bv[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(av) < len(bv):
		return -1
	case len(av) > len(bv):
		return 1
	}
	return 0
}

// Hash returns a CityHash64 digest of the slice contents. Handles that are
// Equal hash identically.
//
// The digest is computed over the raw element bytes, so it is only meaningful
// for element types whose in-memory representation determines their value:
// no padding bytes, no pointers. All empty slices hash alike.
func Hash[T any](s ThinSlice[T]) uint64 {
	n := s.Len()
	if n == 0 {
		return city.CH64(nil)
	}
	var zero T
	b := unsafe.Slice((*byte)(unsafe.Pointer(dataPtr[T](s.h))), uintptr(n)*unsafe.Sizeof(zero))
	return city.CH64(b)
}
