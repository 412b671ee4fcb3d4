package synccontribution

import (
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
	"github.com/prysmaticlabs/go-bitfield"
)

func itemsFromStrings(t *testing.T, sub primitives.SubcommitteeIndex, bits ...string) []*Item {
	items := make([]*Item, len(bits))
	for i, s := range bits {
		b, err := BitlistFromString(s)
		require.NoError(t, err)
		items[i] = &Item{
			Subcommittee:   sub,
			Bits:           b,
			ValidatorIndex: primitives.ValidatorIndex(100 + i),
			Signature:      []byte{byte(i)},
		}
	}
	return items
}

func TestSelectWithoutIntersections_Greedy(t *testing.T) {
	tests := []struct {
		name     string
		bits     []string
		selected []int
		merged   string
	}{
		{
			name:     "multi-bit seed absorbs single bit",
			bits:     []string{"00000001", "11111110", "00111111", "00010000"},
			selected: []int{1, 0},
			merged:   "11111111",
		},
		{
			name:     "smaller seed wins after absorbing singles",
			bits:     []string{"01010101", "10000000", "00100000", "00001000", "00000010", "11111110"},
			selected: []int{0, 1, 2, 3, 4},
			merged:   "11111111",
		},
		{
			name:     "single contribution",
			bits:     []string{"00100000"},
			selected: []int{0},
			merged:   "00100000",
		},
		{
			name:     "duplicate singles keep first seen",
			bits:     []string{"00100000", "00100000", "00000001"},
			selected: []int{0, 2},
			merged:   "00100001",
		},
		{
			name:     "disjoint multi-bit contributions are all selected",
			bits:     []string{"11000000", "00110000", "00001100"},
			selected: []int{0, 1, 2},
			merged:   "11111100",
		},
		{
			name:     "tie keeps first candidate",
			bits:     []string{"11000000", "01100000"},
			selected: []int{0},
			merged:   "11000000",
		},
		{
			name:     "empty bits never selected",
			bits:     []string{"00000000", "00000011"},
			selected: []int{1},
			merged:   "00000011",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := itemsFromStrings(t, 0, tt.bits...)
			selected, err := SelectWithoutIntersections(items, 4, GreedyAggregation)
			require.NoError(t, err)
			assert.Equal(t, tt.selected, selected)
			assert.Equal(t, tt.merged, BitlistToString(MergeBitlists(items, selected)))
		})
	}
}

func TestSelectWithoutIntersections_NoOverlapInSelection(t *testing.T) {
	items := itemsFromStrings(t, 0, "01010101", "10000000", "00100000", "00001000", "00000010", "11111110", "10000000")
	for _, strategy := range []Strategy{GreedyAggregation, MaxCoverAggregation} {
		selected, err := SelectWithoutIntersections(items, 4, strategy)
		require.NoError(t, err)
		covered := bitfield.NewBitlist(8)
		for _, k := range selected {
			overlaps, err := covered.Overlaps(items[k].Bits)
			require.NoError(t, err)
			require.Equal(t, false, overlaps, "strategy %s selected overlapping contribution %d", strategy, k)
			covered, err = covered.Or(items[k].Bits)
			require.NoError(t, err)
		}
	}
}

func TestSelectWithoutIntersections_MaxCover(t *testing.T) {
	items := itemsFromStrings(t, 0, "00000001", "11111110", "00111111", "00010000")
	selected, err := SelectWithoutIntersections(items, 4, MaxCoverAggregation)
	require.NoError(t, err)
	assert.DeepEqual(t, []int{1, 0}, selected)
	assert.Equal(t, "11111111", BitlistToString(MergeBitlists(items, selected)))
}

func TestSelectWithoutIntersections_PartitionsBySubcommittee(t *testing.T) {
	items := append(itemsFromStrings(t, 2, "00001111"), itemsFromStrings(t, 0, "11110000")...)
	items = append(items, itemsFromStrings(t, 7, "11111111")...)
	items = append(items, &Item{Subcommittee: 1})
	selected, err := SelectWithoutIntersections(items, 4, GreedyAggregation)
	require.NoError(t, err)
	// Subcommittee 0 comes first, the out of range one and the one without bits are ignored.
	assert.DeepEqual(t, []int{1, 0}, selected)
}

func TestSelectWithoutIntersections_InvalidStrategy(t *testing.T) {
	items := itemsFromStrings(t, 0, "11000000")
	_, err := SelectWithoutIntersections(items, 4, "naive")
	require.ErrorIs(t, err, aggregation.ErrInvalidStrategy)
}

func TestMergeBitlists(t *testing.T) {
	assert.IsNil(t, MergeBitlists(nil, nil))

	items := itemsFromStrings(t, 0, "1000", "00000001", "0100")
	merged := MergeBitlists(items, []int{0, 1, 2})
	assert.Equal(t, "1100", BitlistToString(merged), "bits past the seed length are dropped")
	// The seed must not be modified in place.
	assert.Equal(t, "1000", BitlistToString(items[0].Bits))
}
