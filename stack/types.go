package stack

// ThreadType classifies a thread for stack-domain selection. It is immutable
// for the lifetime of a live stack allocation; the allocator re-derives the
// owning domain from it at release time.
type ThreadType uint8

const (
	// TypeTask is a normal user task.
	TypeTask ThreadType = iota
	// TypeUserThread is a user-mode thread.
	TypeUserThread
	// TypeKernelThread is a kernel thread; its stack may come from the
	// privileged domain when one is configured.
	TypeKernelThread
)

func (t ThreadType) String() string {
	switch t {
	case TypeTask:
		return "task"
	case TypeUserThread:
		return "user-thread"
	case TypeKernelThread:
		return "kernel-thread"
	default:
		return "unknown"
	}
}
