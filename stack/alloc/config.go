package alloc

import (
	"io"
	"log/slog"

	"github.com/embedkit/stackkit/stack/arch"
	"github.com/embedkit/stackkit/stack/heap"
)

// Indicator receives board-level lifecycle notifications. Implementations
// are typically LED or telemetry hooks; the allocator only ever calls them
// after a successful create.
type Indicator interface {
	StackCreated()
}

// Config configures an Allocator. The zero value is usable: stacks come
// from the Go heap, placement follows arch.PushDown4, and all diagnostics
// are off.
type Config struct {
	// Kernel is the privileged domain for kernel-thread stacks. When nil,
	// kernel threads fall back to the User domain at selection time (the
	// privileged domain is simply "not configured"; this is not a per-call
	// fallback).
	Kernel heap.Allocator

	// User is the unprivileged domain. Defaults to heap.NewGo().
	User heap.Allocator

	// Layout is the architecture stack placement policy. Defaults to
	// arch.PushDown4.
	Layout arch.Layout

	// Coloration fills freshly allocated regions with ColorByte for
	// high-water-mark introspection. Reused regions are never re-filled.
	Coloration bool

	// ReportFailures emits a structured log record when an allocation
	// fails. Purely observational.
	ReportFailures bool

	// Log receives failure reports. Defaults to a discard logger.
	Log *slog.Logger

	// Indicator, when non-nil, is notified after every successful create.
	Indicator Indicator
}

func (c Config) withDefaults() Config {
	if c.User == nil {
		c.User = heap.NewGo()
	}
	if c.Layout == (arch.Layout{}) {
		c.Layout = arch.PushDown4
	}
	if c.Log == nil {
		c.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}
