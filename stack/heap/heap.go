// Package heap provides the backing memory domains stacks are carved from.
//
// Two independent domains exist: an unprivileged one backed by the Go heap
// (Go) and a privileged one backed by anonymous page mappings (Mmap). Domain
// selection is the allocator's job; the domains themselves know nothing
// about threads.
//
// Allocation is synchronous and terminal: a domain either returns a region
// immediately or fails immediately. There is no retry or backoff.
package heap

import "errors"

// Allocator is one allocation domain.
type Allocator interface {
	// Allocate returns a region of at least size bytes, or an error if the
	// domain cannot satisfy the request.
	Allocate(size int) ([]byte, error)

	// Free returns a region to the domain. The region must be the exact
	// handle a previous Allocate produced.
	Free(region []byte) error
}

var (
	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("heap: size must be positive")

	// ErrBadRegion indicates a Free with a region this domain did not produce.
	ErrBadRegion = errors.New("heap: region not owned by this domain")
)

// Go is the unprivileged domain, backed by the Go heap. Freed regions are
// reclaimed by the garbage collector once the handle is dropped.
type Go struct{}

// NewGo returns the unprivileged Go-heap domain.
func NewGo() *Go { return &Go{} }

// Allocate returns a zeroed region of exactly size bytes.
func (*Go) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	return make([]byte, size), nil
}

// Free drops the handle. The garbage collector reclaims the memory.
func (*Go) Free(region []byte) error {
	if region == nil {
		return ErrBadRegion
	}
	return nil
}

// Compile-time interface checks
var (
	_ Allocator = (*Go)(nil)
	_ Allocator = (*Mmap)(nil)
)
