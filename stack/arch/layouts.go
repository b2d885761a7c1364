package arch

// Common layouts. PushDown4 matches the classic 8/16-bit targets this
// allocator was modeled on: a push-down stack with 4-byte words, aligned at
// a word boundary even where the hardware itself does not require it.
var (
	// PushDown4 is a descending stack with 4-byte words and 4-byte alignment.
	PushDown4 = Layout{Word: 4, Align: 4, Growth: GrowsDown}

	// PushDown8 is a descending stack with 8-byte words and 8-byte alignment.
	PushDown8 = Layout{Word: 8, Align: 8, Growth: GrowsDown}

	// PushUp4 is an ascending stack with 4-byte words and 4-byte alignment.
	PushUp4 = Layout{Word: 4, Align: 4, Growth: GrowsUp}
)
