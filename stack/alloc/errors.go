package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the selected memory domain could not satisfy
	// the request. The allocation is not retried and no alternate domain is
	// consulted; the thread-creation request upstream must fail.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrSizeTooSmall indicates the requested size is below the layout's
	// minimum usable stack size.
	ErrSizeTooSmall = errors.New("alloc: stack size below layout minimum")

	// ErrStackInUse indicates an attempt to adopt a region into a
	// descriptor that still holds a live allocation.
	ErrStackInUse = errors.New("alloc: descriptor already holds a stack")
)
