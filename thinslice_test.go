package thinslice

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/thinslice/arena"
)

func TestHandleIsPointerSized(t *testing.T) {
	ptrSize := unsafe.Sizeof(uintptr(0))

	assert.Equal(t, ptrSize, unsafe.Sizeof(ThinSlice[int32]{}))
	assert.Equal(t, ptrSize, unsafe.Sizeof(ThinSlice[[64]byte]{}))
	assert.Equal(t, ptrSize, unsafe.Sizeof(ThinSliceMut[int32]{}))
	assert.Equal(t, ptrSize, unsafe.Sizeof(Uninit[int32]{}))

	// The nullable wrapper is the zero value itself: absence is the nil
	// header, so "optional handle" costs no extra bytes.
	var none ThinSlice[int32]
	assert.Equal(t, ptrSize, unsafe.Sizeof(none))
	assert.Nil(t, none.h)
	assert.NotNil(t, Empty[int32]().h)
	assert.Zero(t, none.Len())
	assert.Nil(t, none.View())
}

func TestEmptySingletonIdentity(t *testing.T) {
	a1 := arena.NewArena(0)
	defer a1.Release()
	a2 := arena.NewArena(1024)
	defer a2.Release()

	canonical := Empty[int]().h
	require.Equal(t, unsafe.Pointer(&emptyHeader), unsafe.Pointer(canonical))

	// Every zero-length construction, any constructor, any arena, any
	// element type, lands on the same static header.
	handles := []*header{
		CopyFrom(a1, []int{}).h,
		CopyFrom(a2, []int(nil)).h,
		Fill(a1, 0, 7).h,
		Zeroed[int](a1, 0).h,
		FromFunc(a2, 0, func(i int) int { return i }).h,
		FromRange(a1, 5, 5).h,
		NewUninit[int](a2, 0).h,
		Empty[string]().h,
		CopyFrom(a1, []float64{}).h,
		Fill(a2, 0, struct{ a, b int }{}).h,
	}
	for i, h := range handles {
		assert.Same(t, canonical, h, "handle %d", i)
	}

	before := a1.SizeInUse()
	_ = Zeroed[int64](a1, 0)
	assert.Equal(t, before, a1.SizeInUse(), "empty construction must not allocate")
}

func TestContentEqualityAndHash(t *testing.T) {
	a1 := arena.NewArena(0)
	defer a1.Release()
	a2 := arena.NewArena(0)
	defer a2.Release()

	x := CopyFrom(a1, []int{1, 2, 3, 4}).IntoShared()
	y := FromFunc(a2, 4, func(i int) int { return i + 1 }).IntoShared()
	z := CopyFrom(a1, []int{1, 2, 3, 5}).IntoShared()

	assert.True(t, Equal(x, y), "equal content across arenas")
	assert.Equal(t, Hash(x), Hash(y))
	assert.False(t, Equal(x, z))
	assert.False(t, Equal(x, Empty[int]()))

	assert.True(t, Equal(Empty[int](), Empty[int]()))
	assert.Equal(t, Hash(Empty[int]()), Hash(CopyFrom(a1, []int{}).IntoShared()))

	// Equal content is not pointer-identical outside the empty case.
	assert.NotEqual(t, unsafe.Pointer(x.h), unsafe.Pointer(y.h))
}

func TestEqualFunc(t *testing.T) {
	a := arena.NewArena(0)
	defer a.Release()

	x := CopyFrom(a, []int{1, 2, 3}).IntoShared()
	y := CopyFrom(a, []int{-1, -2, -3}).IntoShared()

	abs := func(p, q int) bool {
		if p < 0 {
			p = -p
		}
		if q < 0 {
			q = -q
		}
		return p == q
	}
	assert.True(t, EqualFunc(x, y, abs))
	assert.False(t, EqualFunc(x, CopyFrom(a, []int{1, 2}).IntoShared(), abs))
}

func TestCompare(t *testing.T) {
	a := arena.NewArena(0)
	defer a.Release()

	mk := func(vs ...int) ThinSlice[int] { return CopyFrom(a, vs).IntoShared() }

	assert.Equal(t, 0, Compare(mk(1, 2, 3), mk(1, 2, 3)))
	assert.Equal(t, -1, Compare(mk(1, 2), mk(1, 3)))
	assert.Equal(t, 1, Compare(mk(2), mk(1, 9, 9)))
	assert.Equal(t, -1, Compare(mk(1, 2), mk(1, 2, 0)), "prefix orders first")
	assert.Equal(t, -1, Compare(Empty[int](), mk(0)))
	assert.Equal(t, 0, Compare(Empty[int](), Empty[int]()))

	desc := func(x, y int) int { return -cmpInt(x, y) }
	assert.Equal(t, 1, CompareFunc(mk(1), mk(2), desc))
}

func cmpInt(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func TestAllIteration(t *testing.T) {
	a := arena.NewArena(0)
	defer a.Release()

	s := FromRange(a, 10, 15).IntoShared()

	var idx []int
	var got []int
	for i, v := range s.All() {
		idx = append(idx, i)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, idx)
	assert.Equal(t, []int{10, 11, 12, 13, 14}, got)

	// Early break stops the sequence.
	count := 0
	for range s.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestStringAndAt(t *testing.T) {
	a := arena.NewArena(0)
	defer a.Release()

	s := CopyFrom(a, []int{1, 2, 3}).IntoShared()
	assert.Equal(t, "[1 2 3]", s.String())
	assert.Equal(t, "[]", Empty[int]().String())
	assert.Equal(t, 2, s.At(1))
	assert.Panics(t, func() { s.At(3) })
	assert.False(t, s.IsEmpty())
	assert.True(t, Empty[int]().IsEmpty())
}
