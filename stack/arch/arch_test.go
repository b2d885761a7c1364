package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjust_PushDown_AlignedBase(t *testing.T) {
	base := uintptr(0x1000)

	top, adjSize := PushDown4.Adjust(base, 512)

	// Initial pointer one word below the region end, rounded down to a
	// 4-byte boundary.
	assert.Equal(t, base+512-4, top)
	assert.Equal(t, 512, adjSize)
	assert.Zero(t, top%4, "top must be word aligned")
}

func TestAdjust_PushDown_UnalignedBase(t *testing.T) {
	base := uintptr(0x1001)

	top, adjSize := PushDown4.Adjust(base, 512)

	assert.Equal(t, uintptr(0x11FC), top)
	assert.Equal(t, 511, adjSize)
	assert.LessOrEqual(t, adjSize, 512, "trimming never grows the span")
}

func TestAdjust_PushUp(t *testing.T) {
	// Unaligned base: pointer rounds up, span shrinks by the trim.
	top, adjSize := PushUp4.Adjust(0x2002, 256)
	assert.Equal(t, uintptr(0x2004), top)
	assert.Equal(t, 254, adjSize)

	// Aligned base: nothing trimmed.
	top, adjSize = PushUp4.Adjust(0x2000, 256)
	assert.Equal(t, uintptr(0x2000), top)
	assert.Equal(t, 256, adjSize)
}

func TestAdjust_NoAlignmentConstraint(t *testing.T) {
	l := Layout{Word: 2, Align: 1, Growth: GrowsDown}

	top, adjSize := l.Adjust(0x1003, 100)

	assert.Equal(t, uintptr(0x1003+100-2), top)
	assert.Equal(t, 100, adjSize)
}

func TestMinStackSize(t *testing.T) {
	assert.Equal(t, 8, PushDown4.MinStackSize())
	assert.Equal(t, 16, PushDown8.MinStackSize())
	assert.Equal(t, 8, PushUp4.MinStackSize())
}

// Sweep bases and sizes and check the placement invariants: the pointer is
// aligned, the usable span is positive, no larger than the request, and lies
// entirely inside the raw region.
func TestAdjust_InvariantSweep(t *testing.T) {
	layouts := []Layout{PushDown4, PushDown8, PushUp4,
		{Word: 2, Align: 2, Growth: GrowsDown},
		{Word: 4, Align: 16, Growth: GrowsUp},
	}

	for _, l := range layouts {
		for baseOff := uintptr(0); baseOff < 32; baseOff++ {
			base := 0x4000 + baseOff
			for size := l.MinStackSize(); size < l.MinStackSize()+128; size++ {
				top, adjSize := l.Adjust(base, size)

				require.Zero(t, top%uintptr(l.Align),
					"layout %+v base %#x size %d: top %#x unaligned", l, base, size, top)
				require.Positive(t, adjSize,
					"layout %+v base %#x size %d: empty span", l, base, size)
				require.LessOrEqual(t, adjSize, size,
					"layout %+v base %#x size %d: span grew", l, base, size)

				// Usable span stays inside [base, base+size).
				var lo, hi uintptr
				if l.Growth == GrowsDown {
					lo = top + uintptr(l.Word) - uintptr(adjSize)
					hi = top + uintptr(l.Word)
				} else {
					lo = top
					hi = top + uintptr(adjSize)
				}
				require.GreaterOrEqual(t, lo, base,
					"layout %+v base %#x size %d: span below region", l, base, size)
				require.LessOrEqual(t, hi, base+uintptr(size),
					"layout %+v base %#x size %d: span above region", l, base, size)
			}
		}
	}
}
