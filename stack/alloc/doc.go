// Package alloc manages the lifecycle of thread execution stacks.
//
// # Overview
//
// The Allocator obtains a stack region from one of two memory domains,
// applies the configured architecture layout to compute the thread's initial
// stack pointer, and records the result in the thread's stack.Descriptor.
// The same allocator releases the region at thread teardown.
//
// # Lifecycle
//
//   - Create: allocate (or reuse) a region and populate the descriptor
//   - Use: adopt a caller-provided region instead of allocating
//   - Release: return the region to its domain and reset the descriptor
//
// A re-creation request with the same recorded size reuses the region in
// place without touching the domain. A size change releases first, then
// allocates fresh; if that fresh allocation fails the descriptor is left
// fully unallocated, never pointing at the already-freed old region.
//
// # Domains
//
// Kernel threads draw from the privileged domain when one is configured;
// everything else draws from the unprivileged domain. Selection is a pure
// function of thread type and configuration. There is no fallback: a failed
// privileged allocation is not retried against the user domain.
//
// # Diagnostics
//
// With Coloration enabled, freshly allocated regions are filled with
// ColorByte so HighWater can later report peak stack usage by scanning for
// the first modified byte. Reused regions are never re-filled. A separate
// ReportFailures flag emits one structured log record per allocation
// failure; it never affects control flow.
//
// # Usage Example
//
//	a := alloc.New(alloc.Config{
//	    Kernel:     heap.NewMmap(),
//	    Layout:     arch.PushDown4,
//	    Coloration: true,
//	})
//
//	var d stack.Descriptor
//	if err := a.Create(&d, 2048, stack.TypeKernelThread); err != nil {
//	    return err // alloc.ErrOutOfMemory
//	}
//	// seed the thread's initial SP from d.AdjTop, then later:
//	a.Release(&d, stack.TypeKernelThread)
package alloc
