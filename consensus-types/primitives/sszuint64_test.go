package primitives_test

import (
	"strings"
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

func TestSSZUint64_Limit(t *testing.T) {
	sszType := primitives.SSZUint64(0)
	serializedObj := [7]byte{}
	err := sszType.UnmarshalSSZ(serializedObj[:])
	if err == nil || !strings.Contains(err.Error(), "expected buffer of length") {
		t.Errorf("Expected Error = %s, got: %v", "expected buffer of length", err)
	}
}

func TestSSZUint64_RoundTrip(t *testing.T) {
	fixedVal := uint64(8)
	sszVal := primitives.SSZUint64(fixedVal)

	marshalledObj, err := sszVal.MarshalSSZ()
	require.NoError(t, err)
	newVal := primitives.SSZUint64(0)
	require.NoError(t, newVal.UnmarshalSSZ(marshalledObj))
	assert.Equal(t, fixedVal, uint64(newVal))
}

func TestSSZUint64_HashTreeRoot(t *testing.T) {
	v := primitives.SSZUint64(1)
	root, err := v.HashTreeRoot()
	require.NoError(t, err)
	want := [32]byte{1}
	assert.Equal(t, want, root)
}

func TestSlot_Arithmetic(t *testing.T) {
	s := primitives.Slot(10)
	assert.Equal(t, primitives.Slot(15), s.Add(5))
	assert.Equal(t, primitives.Slot(3), s.Sub(7))
	assert.Equal(t, primitives.Slot(0), s.Sub(11), "subtraction saturates at zero")
	assert.Equal(t, primitives.Slot(2), s.Mod(4))
	assert.Equal(t, primitives.Slot(0), s.Mod(0))
	assert.Equal(t, "10", s.Key())
	assert.Equal(t, "4600500", primitives.Slot(4600500).Key())
}
