// Package arch describes how a target architecture places the initial stack
// pointer inside a raw stack region.
//
// A Layout is pure data and Adjust is a pure function over (base, size)
// pairs, so placement can be unit-tested in isolation from any allocation.
package arch

import "github.com/embedkit/stackkit/internal/align"

// Growth is the direction the hardware stack grows in memory.
type Growth uint8

const (
	// GrowsDown is a push-down stack: the stack pointer moves toward lower
	// addresses and holds the address of the last-pushed valid word.
	GrowsDown Growth = iota
	// GrowsUp is the mirror arrangement, growing toward higher addresses.
	GrowsUp
)

// Layout captures the stack placement rules of one architecture.
type Layout struct {
	// Word is the size in bytes of the word reserved at the initial stack
	// pointer position.
	Word int

	// Align is the required stack-pointer alignment in bytes, a power of
	// two. 1 means the architecture imposes no alignment.
	Align int

	// Growth is the stack growth direction.
	Growth Growth
}

// MinStackSize returns the smallest raw region size Adjust is defined for:
// one alignment unit plus one reserved word. Smaller regions could trim to
// an empty usable span.
func (l Layout) MinStackSize() int {
	return l.Align + l.Word
}

// Adjust computes the initial stack-pointer value and the usable span for a
// raw region of the given base address and size.
//
// For a push-down stack the pointer is placed one word below the region's
// end and rounded down to the alignment boundary; the usable span runs from
// base up to and including that reserved word. For an ascending stack the
// pointer is the base rounded up, and the span shrinks by whatever the
// rounding trimmed from the bottom.
//
// The result never extends past [base, base+size), and for any
// size >= MinStackSize the span is positive.
func (l Layout) Adjust(base uintptr, size int) (top uintptr, adjSize int) {
	a := uintptr(l.Align)

	switch l.Growth {
	case GrowsUp:
		top = align.Up(base, a)
		adjSize = size - int(top-base)
	default:
		top = align.Down(base+uintptr(size)-uintptr(l.Word), a)
		adjSize = int(top-base) + l.Word
	}
	return top, adjSize
}
