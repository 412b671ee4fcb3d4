package cache

import (
	"encoding/binary"
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

func rootOf(i int) [32]byte {
	var r [32]byte
	binary.LittleEndian.PutUint64(r[:8], uint64(i))
	return r
}

func TestInvalidBlockRoots_Bounded(t *testing.T) {
	r, err := NewInvalidBlockRoots(500)
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		require.Equal(t, false, r.Add(rootOf(i)))
	}
	assert.Equal(t, true, r.Add(rootOf(500)), "501st root evicts")
	assert.Equal(t, 500, r.Len())
	assert.Equal(t, false, r.Contains(rootOf(0)), "earliest inserted root is evicted")
	for i := 1; i <= 500; i++ {
		require.Equal(t, true, r.Contains(rootOf(i)))
	}
}

func TestInvalidBlockRoots_LookupDoesNotRefresh(t *testing.T) {
	r, err := NewInvalidBlockRoots(2)
	require.NoError(t, err)
	r.Add(rootOf(1))
	r.Add(rootOf(2))
	require.Equal(t, true, r.Contains(rootOf(1)))
	// Re-adding an existing root keeps its position too.
	require.Equal(t, false, r.Add(rootOf(1)))
	r.Add(rootOf(3))
	assert.Equal(t, false, r.Contains(rootOf(1)))
	assert.DeepEqual(t, [][32]byte{rootOf(2), rootOf(3)}, r.Roots())
}

func TestInvalidBlockRoots_Size(t *testing.T) {
	_, err := NewInvalidBlockRoots(0)
	require.ErrorIs(t, err, ErrInvalidCacheSize)
}
