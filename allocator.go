package thinslice

import "unsafe"

// Allocator is the contract thin slices consume from an arena: raw aligned
// memory that stays valid until the arena itself is reset or released.
// Individual allocations are never freed.
//
// *arena.Arena and *arena.SafeArena both satisfy it.
type Allocator interface {
	// Alloc returns size bytes of uninitialized memory whose address is a
	// multiple of align (a power of two), or nil when size is 0.
	Alloc(size, align uintptr) unsafe.Pointer
}
