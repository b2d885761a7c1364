//go:build unix

package heap

import "golang.org/x/sys/unix"

// Mmap is the privileged domain, backed by anonymous private mappings. The
// mapping is page-granular; the returned region has the requested length and
// must be handed back to Free unchanged so the mapping can be located.
type Mmap struct{}

// NewMmap returns the privileged mapping-backed domain.
func NewMmap() *Mmap { return &Mmap{} }

// Allocate maps a fresh anonymous region of size bytes.
func (*Mmap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	region, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return region, nil
}

// Free unmaps a region previously returned by Allocate.
func (*Mmap) Free(region []byte) error {
	if region == nil {
		return ErrBadRegion
	}
	if err := unix.Munmap(region); err != nil {
		return ErrBadRegion
	}
	return nil
}
