package alloc

import "errors"

// fakeHeap is a counting allocation domain for tests. It can be forced to
// fail to exercise the out-of-memory path.
type fakeHeap struct {
	allocs int
	frees  int
	fail   bool
	freed  [][]byte
}

var errExhausted = errors.New("fakeheap: exhausted")

func (f *fakeHeap) Allocate(size int) ([]byte, error) {
	if f.fail {
		return nil, errExhausted
	}
	f.allocs++
	return make([]byte, size), nil
}

func (f *fakeHeap) Free(region []byte) error {
	f.frees++
	f.freed = append(f.freed, region)
	return nil
}

// countingIndicator counts StackCreated notifications.
type countingIndicator struct {
	created int
}

func (c *countingIndicator) StackCreated() { c.created++ }
