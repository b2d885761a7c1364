package alloc

import (
	"github.com/embedkit/stackkit/stack"
	"github.com/embedkit/stackkit/stack/heap"
)

// Allocator manages thread stack regions. It executes synchronously in the
// caller's context and holds no state of its own beyond configuration; all
// per-thread state lives in the stack.Descriptor. The caller must serialize
// Create/Use/Release for a given descriptor.
type Allocator struct {
	cfg Config
}

// New returns an Allocator for the given configuration, applying defaults
// for any unset field.
func New(cfg Config) *Allocator {
	return &Allocator{cfg: cfg.withDefaults()}
}

// Create allocates a stack of size bytes for a thread of the given type and
// records the adjusted bounds in d.
//
// If d already holds a stack of the same recorded size, the region is
// reused in place with no domain call. If the recorded size differs, the
// old region is released first and a fresh one allocated; should that fresh
// allocation fail, d is left fully unallocated, never pointing at the
// already-freed region.
//
// size must be at least the layout's MinStackSize. The only allocation
// failure is ErrOutOfMemory; it is not retried and no alternate domain is
// consulted.
func (a *Allocator) Create(d *stack.Descriptor, size int, tt stack.ThreadType) error {
	if size < a.cfg.Layout.MinStackSize() {
		return ErrSizeTooSmall
	}

	// A live stack is reused only when the recorded size matches the
	// request exactly; "big enough" does not qualify. Anything else is
	// released before reallocating.
	if d.Allocated() && d.AdjSize != size {
		a.Release(d, tt)
	}

	if !d.Allocated() {
		region, err := a.domainFor(tt).Allocate(size)
		if err != nil {
			if a.cfg.ReportFailures {
				a.cfg.Log.Error("stack allocation failed",
					"size", size, "thread", tt.String())
			}
			reset(d)
			return ErrOutOfMemory
		}
		d.Raw = region
		d.Adopted = false

		// Coloration applies to freshly obtained memory only; a stack
		// reused in place keeps its live contents.
		if a.cfg.Coloration {
			fill(region)
		}
	}

	top, adjSize := a.cfg.Layout.Adjust(d.Base(), size)
	d.RequestedSize = size
	d.AdjTop = top
	d.AdjSize = adjSize

	if a.cfg.Indicator != nil {
		a.cfg.Indicator.StackCreated()
	}
	return nil
}

// Use adopts a caller-provided region as the thread's stack. The region is
// not colored and is never freed by Release; ownership stays with the
// caller. d must be unallocated, and the region at least the layout's
// MinStackSize.
func (a *Allocator) Use(d *stack.Descriptor, region []byte) error {
	if d.Allocated() {
		return ErrStackInUse
	}
	if len(region) < a.cfg.Layout.MinStackSize() {
		return ErrSizeTooSmall
	}

	d.Raw = region
	d.Adopted = true

	top, adjSize := a.cfg.Layout.Adjust(d.Base(), len(region))
	d.RequestedSize = len(region)
	d.AdjTop = top
	d.AdjSize = adjSize
	return nil
}

// Release returns d's region to the domain that produced it and resets d to
// the unallocated state. The domain is re-derived from tt, which must not
// have changed since the stack was created. Releasing an unallocated
// descriptor is a no-op.
func (a *Allocator) Release(d *stack.Descriptor, tt stack.ThreadType) {
	if !d.Allocated() {
		return
	}
	if !d.Adopted {
		if err := a.domainFor(tt).Free(d.Raw); err != nil {
			a.cfg.Log.Error("stack free failed",
				"thread", tt.String(), "error", err)
		}
	}
	reset(d)
}

// domainFor selects the allocation domain for a thread type. Kernel threads
// use the privileged domain when one is configured; everything else uses
// the unprivileged domain.
func (a *Allocator) domainFor(tt stack.ThreadType) heap.Allocator {
	if tt == stack.TypeKernelThread && a.cfg.Kernel != nil {
		return a.cfg.Kernel
	}
	return a.cfg.User
}

func reset(d *stack.Descriptor) {
	d.Raw = nil
	d.RequestedSize = 0
	d.AdjTop = 0
	d.AdjSize = 0
	d.Adopted = false
}
