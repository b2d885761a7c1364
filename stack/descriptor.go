package stack

import "unsafe"

// Descriptor records the stack region backing one thread. It is owned by the
// thread control block; stack/alloc populates and clears it, and the
// context-switch path reads AdjTop/AdjSize to seed the thread's initial
// register state.
//
// State machine: unallocated (Raw == nil) -> allocated -> re-created in place
// (same region, matching size) or released+reallocated (size change) ->
// unallocated on explicit release.
type Descriptor struct {
	// Raw is the region handle returned by the owning memory domain, or nil
	// when unallocated. It is freed only through the allocator's release
	// path, always with this original handle.
	Raw []byte

	// RequestedSize is the size last requested by the caller, in bytes.
	// Retained for the reuse comparison on re-creation requests.
	RequestedSize int

	// AdjTop is the architecture-adjusted initial stack-pointer value,
	// recomputed on every (re)creation.
	AdjTop uintptr

	// AdjSize is the usable stack span after alignment trimming. Diagnostics
	// and high-water checks only; never used for freeing.
	AdjSize int

	// Adopted marks a region provided by the caller rather than allocated
	// from a domain. Adopted regions are never freed on release.
	Adopted bool
}

// Allocated reports whether the descriptor holds a live stack region.
func (d *Descriptor) Allocated() bool {
	return d.Raw != nil
}

// Base returns the address of the first byte of the raw region, or 0 when
// unallocated.
func (d *Descriptor) Base() uintptr {
	if len(d.Raw) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&d.Raw[0]))
}
