//go:build !unix

package heap

// Mmap degrades to the Go heap on platforms without anonymous mappings. The
// domain split is preserved so allocator behavior stays identical; only the
// backing memory differs.
type Mmap struct{}

// NewMmap returns the privileged domain. On this platform it is backed by
// the Go heap.
func NewMmap() *Mmap { return &Mmap{} }

func (*Mmap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	return make([]byte, size), nil
}

func (*Mmap) Free(region []byte) error {
	if region == nil {
		return ErrBadRegion
	}
	return nil
}
