package flags

import (
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

func TestEnumValue_Set(t *testing.T) {
	e := &EnumValue{Enum: []string{"greedy", "max_cover"}, Value: "greedy", Destination: new(string)}
	assert.Equal(t, "greedy", e.String())

	require.NoError(t, e.Set("max_cover"))
	assert.Equal(t, "max_cover", e.String())

	err := e.Set("random")
	assert.ErrorContains(t, "allowed values are greedy, max_cover", err)
	assert.Equal(t, "max_cover", e.String())
}

func TestEnumValue_GenericFlag(t *testing.T) {
	dst := new(string)
	f := EnumValue{Name: "format", Usage: "Output format.", Enum: []string{"a", "b"}, Value: "b", Destination: dst}.GenericFlag()
	assert.Equal(t, "b", *dst)
	assert.Equal(t, "format", f.Name)
	assert.Equal(t, "Output format. (one of a, b)", f.Usage)
	assert.Equal(t, "b", f.Value.String())
}

func TestEnumValue_GenericFlag_SetThroughValue(t *testing.T) {
	dst := new(string)
	f := EnumValue{Name: "strategy", Enum: []string{"greedy", "max_cover"}, Value: "greedy", Destination: dst}.GenericFlag()
	require.NoError(t, f.Value.Set("max_cover"))
	assert.Equal(t, "max_cover", *dst)
	assert.Equal(t, "max_cover", f.Value.String())
	assert.ErrorContains(t, "allowed values are greedy, max_cover", f.Value.Set("random"))
}
