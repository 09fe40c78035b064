// Package arena implements a chunked bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena allocator hands out portions of large pre-allocated chunks on
// demand and reclaims everything at once. It is the backing store the
// thinslice package builds on, and is useful on its own for:
//
//   - Request-scoped allocations with batch cleanup
//   - Reducing garbage collection pressure
//   - Predictable allocation patterns in hot paths
//
// # Basic Usage
//
//	a := arena.NewArena(0) // Use default chunk size
//	defer a.Release()      // Clean up when done
//
//	// Allocate raw aligned memory
//	p := a.Alloc(64, 8)
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr := arena.New[MyStruct](a)
//	slice := arena.MakeSlice[int](a, 100)
//
//	// Reset for reuse (O(1) operation)
//	a.Reset()
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use
// SafeArena:
//
//	s := arena.NewSafeArena(0)
//	defer s.Release()
//
//	buf := s.AllocBytes(1024)
//	ptr := arena.SafeNew[MyStruct](s)
//
// # Memory Layout
//
// The arena allocates memory in chunks (default 64KB). When a chunk cannot
// satisfy a request, a new chunk is allocated. Memory within chunks is
// handed out sequentially; Alloc honors any power-of-two alignment the
// caller asks for, AllocBytes always aligns to the pointer size.
//
// # Important Notes
//
//   - Allocated memory is only valid while the arena exists
//   - No individual deallocation - use Reset() or Release() for bulk cleanup
//   - Memory is not zeroed unless using New() or MakeSliceZeroed()
//   - Chunks are byte arrays: Go pointers stored in arena memory do not keep
//     their referents alive
//
// # Metrics and Monitoring
//
// The arena exposes usage statistics for monitoring:
//
//	m := a.Snapshot()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Memory in use: %d bytes\n", m.SizeInUse)
package arena
