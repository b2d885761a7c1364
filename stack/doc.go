// Package stack defines the per-thread execution-stack descriptor and the
// thread classification that selects its backing memory domain.
//
// A scheduler embeds a Descriptor in each thread control block. The
// stack/alloc package is the only mutator of a live Descriptor besides the
// thread's own execution through the hardware stack pointer; the scheduler
// must serialize create/release calls for a given descriptor.
//
// Subpackages:
//
//   - stack/arch:  architecture stack layout policy (growth direction,
//     alignment, reserved word) as pure functions
//   - stack/heap:  backing memory domains (user heap, privileged mappings)
//   - stack/alloc: the stack lifecycle allocator itself
package stack
