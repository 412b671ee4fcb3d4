package bytesutil_test

import (
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/encoding/bytesutil"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
)

func TestToBytes32(t *testing.T) {
	tests := []struct {
		a []byte
		b [32]byte
	}{
		{nil, [32]byte{}},
		{[]byte{1, 2, 3}, [32]byte{1, 2, 3}},
		{make([]byte, 40), [32]byte{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.b, bytesutil.ToBytes32(tt.a))
	}
}

func TestTrunc(t *testing.T) {
	assert.DeepEqual(t, []byte{1, 2, 3, 4, 5, 6}, bytesutil.Trunc([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.DeepEqual(t, []byte{1, 2}, bytesutil.Trunc([]byte{1, 2}))
}

func TestSafeCopyBytes(t *testing.T) {
	assert.IsNil(t, bytesutil.SafeCopyBytes(nil))
	src := []byte{'a', 'b'}
	cp := bytesutil.SafeCopyBytes(src)
	src[0] = 'z'
	assert.DeepEqual(t, []byte{'a', 'b'}, cp)
}
