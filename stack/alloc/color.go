package alloc

import (
	"github.com/embedkit/stackkit/stack"
	"github.com/embedkit/stackkit/stack/arch"
)

// ColorByte is the fill pattern written into freshly allocated stacks when
// coloration is enabled. Peak usage is later found by scanning from the
// quiet end of the stack for the first byte that no longer matches.
const ColorByte = 0xAA

func fill(region []byte) {
	for i := range region {
		region[i] = ColorByte
	}
}

// HighWater reports the peak stack usage of d in bytes: the distance from
// the stack's origin to the deepest byte ever modified. It is meaningful
// only for stacks created with Coloration enabled; an unallocated or
// untouched stack reports 0.
//
// For a descending stack the scan runs from the low end of the usable span
// upward; for an ascending stack, from the high end downward.
func (a *Allocator) HighWater(d *stack.Descriptor) int {
	if !d.Allocated() || d.AdjSize <= 0 {
		return 0
	}

	if a.cfg.Layout.Growth == arch.GrowsUp {
		start := int(d.AdjTop - d.Base())
		span := d.Raw[start : start+d.AdjSize]
		for i := len(span) - 1; i >= 0; i-- {
			if span[i] != ColorByte {
				return i + 1
			}
		}
		return 0
	}

	// The usable span of a descending stack starts at the region base.
	span := d.Raw[:d.AdjSize]
	for i, b := range span {
		if b != ColorByte {
			return d.AdjSize - i
		}
	}
	return 0
}
