//go:build unix

package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmap_AllocateFree(t *testing.T) {
	m := NewMmap()

	region, err := m.Allocate(8192)
	require.NoError(t, err)
	require.Len(t, region, 8192)

	// The mapping is writable end to end.
	region[0] = 0xAA
	region[len(region)-1] = 0x55

	require.NoError(t, m.Free(region))
}

func TestMmap_AllocateBadSize(t *testing.T) {
	m := NewMmap()

	_, err := m.Allocate(0)
	assert.ErrorIs(t, err, ErrBadSize)
	_, err = m.Allocate(-1)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestMmap_DoubleFree(t *testing.T) {
	m := NewMmap()

	region, err := m.Allocate(4096)
	require.NoError(t, err)
	require.NoError(t, m.Free(region))

	// The mapping is gone; a second free must not succeed.
	assert.ErrorIs(t, m.Free(region), ErrBadRegion)
}

func TestMmap_FreeNil(t *testing.T) {
	m := NewMmap()
	assert.ErrorIs(t, m.Free(nil), ErrBadRegion)
}

func TestMmap_SubPageSize(t *testing.T) {
	m := NewMmap()

	region, err := m.Allocate(512)
	require.NoError(t, err)
	require.Len(t, region, 512)
	require.NoError(t, m.Free(region))
}
