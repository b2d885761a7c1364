package align

// Alignment utilities for stack placement. All helpers require a power-of-two
// alignment; an alignment of 1 means "no constraint" and returns the input
// unchanged.

// Up returns addr rounded up to the next multiple of a.
//
// Example:
//
//	Up(0x1001, 4) = 0x1004
//	Up(0x1004, 4) = 0x1004
func Up(addr uintptr, a uintptr) uintptr {
	return (addr + a - 1) &^ (a - 1)
}

// Down returns addr rounded down to the previous multiple of a.
//
// Example:
//
//	Down(0x1007, 4) = 0x1004
//	Down(0x1004, 4) = 0x1004
func Down(addr uintptr, a uintptr) uintptr {
	return addr &^ (a - 1)
}

// Aligned reports whether addr is a multiple of a.
func Aligned(addr uintptr, a uintptr) bool {
	return addr&(a-1) == 0
}
