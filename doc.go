// Package thinslice implements pointer-sized slice handles whose length and
// element data live together in a single arena allocation.
//
// # Overview
//
// A conventional Go slice is three words (pointer, length, capacity); even a
// bare (pointer, length) pair is two. A thin slice stores the length in a
// header immediately in front of the element data, so the handle itself is a
// single pointer. This halves (or thirds) the footprint of slice-heavy data
// structures such as AST nodes, and lets a handle be passed in one register.
//
// Memory layout of the backing allocation:
//
//	[length header][element 0][element 1]...[element len-1]
//
// The offset from the header to element 0 depends only on the element type's
// alignment, never on the length, so it constant-folds for any concrete type.
//
// # Basic Usage
//
//	a := arena.NewArena(0)
//	defer a.Release()
//
//	s := thinslice.CopyFrom(a, []int{1, 2, 3, 4})
//	s.Set(0, 10)
//	fmt.Println(s.View()) // [10 2 3 4]
//
//	shared := s.IntoShared() // demote to a read-only handle
//
// # Access Modes
//
// There are two handle types over the same representation. ThinSlice is the
// shared, read-only view: freely copyable, since no copy can be used to
// mutate. ThinSliceMut is the exclusive, writable view: it must not be
// duplicated, and can be demoted to a ThinSlice with Shared (borrowing) or
// IntoShared (consuming). There is no way back from shared to mutable.
//
// Go has no borrow checker, so exclusivity of ThinSliceMut and the
// read-only-ness of View results are a documented contract, not a runtime
// check. Treat a ThinSliceMut the way you treat a sync.Mutex: one logical
// owner, never copied.
//
// # Lifetime
//
// All handles point into arena memory. They are valid until the owning
// arena's Reset or Release, are never resized, and are never individually
// freed. The one exception is the zero-length handle: every empty thin
// slice, from any constructor and any arena, points at one statically
// allocated header, so building an empty slice touches no arena at all.
//
// # Element Types
//
// Element data lives in byte-backed arena chunks, which the garbage
// collector does not scan for pointers. Elements containing Go pointers
// (strings, maps, slices, pointers) do not keep their referents alive;
// the caller must hold those references elsewhere for the arena's lifetime.
package thinslice
