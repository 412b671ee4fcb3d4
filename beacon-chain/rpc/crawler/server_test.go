package crawler

import (
	"context"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	dbtest "github.com/prysmaticlabs/beacon-crawler/beacon-chain/db/testing"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/operations/synccommittee"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
	"github.com/prysmaticlabs/go-bitfield"
)

type concatAggregator struct{}

func (concatAggregator) AggregateSignatures(sigs [][]byte) ([]byte, error) {
	var out []byte
	for _, s := range sigs {
		out = append(out, s...)
	}
	return out, nil
}

func setupServer(t *testing.T) (*Server, *synccommittee.Store) {
	store := synccommittee.NewStore(&synccommittee.Config{
		DB:         dbtest.SetupDB(t),
		Aggregator: concatAggregator{},
	})
	return &Server{Pool: store}, store
}

func saveContribution(t *testing.T, store *synccommittee.Store, slot primitives.Slot, sub primitives.SubcommitteeIndex, aggregator primitives.ValidatorIndex, sig byte, bits ...uint64) {
	b := bitfield.NewBitvector128()
	for _, i := range bits {
		b.SetBitAt(i, true)
	}
	require.NoError(t, store.SaveSyncCommitteeContribution(context.Background(), &synccommittee.ContributionAndProof{
		AggregatorIndex: aggregator,
		Contribution: &synccommittee.SyncCommitteeContribution{
			Slot:              slot,
			BlockRoot:         [32]byte{0xab},
			SubcommitteeIndex: sub,
			AggregationBits:   b,
			Signature:         []byte{sig},
		},
	}))
}

func TestServer_NotFound(t *testing.T) {
	srv, _ := setupServer(t)
	ctx := context.Background()
	_, err := srv.SyncMessagesBySlot(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = srv.ValidatorsBySlot(ctx, 1, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServer_SyncMessagesBySlot(t *testing.T) {
	srv, store := setupServer(t)
	ctx := context.Background()
	saveContribution(t, store, 2, 1, 7, 0x01, 0)
	require.NoError(t, store.SaveSyncCommitteeMessage(ctx, &synccommittee.SyncCommitteeMessage{
		Slot:           2,
		BlockRoot:      [32]byte{0xcd},
		ValidatorIndex: 42,
		Signature:      []byte{0x02, 0x03},
	}))

	got, err := srv.SyncMessagesBySlot(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, len(got))

	assert.Equal(t, primitives.Slot(2), got[0].Slot)
	assert.Equal(t, true, strings.HasPrefix(got[0].BeaconRoot, "0xab00"))
	assert.Equal(t, "0x01", got[0].Signature)
	assert.Equal(t, 512, len(got[0].Bitlist))
	assert.Equal(t, byte('1'), got[0].Bitlist[128])
	assert.Equal(t, 1, strings.Count(got[0].Bitlist, "1"))
	assert.Equal(t, primitives.ValidatorIndex(7), got[0].ValidatorIndex)
	assert.Equal(t, primitives.SubcommitteeIndex(1), got[0].SubcommitteeIndex)

	assert.Equal(t, "", got[1].Bitlist)
	assert.Equal(t, "0x0203", got[1].Signature)
	assert.Equal(t, primitives.ValidatorIndex(42), got[1].ValidatorIndex)

	enc, err := jsoniter.Marshal(got[1])
	require.NoError(t, err)
	assert.StringContains(t, `"sub_committee_index":0`, string(enc))
	assert.StringContains(t, `"validator_index":42`, string(enc))
}

func TestServer_ValidatorsBySlot(t *testing.T) {
	srv, store := setupServer(t)
	ctx := context.Background()
	saveContribution(t, store, 3, 0, 1, 0x0a, 0, 1)
	saveContribution(t, store, 3, 0, 2, 0x0b, 2)
	saveContribution(t, store, 3, 3, 3, 0x0c, 127)

	table := make([]primitives.ValidatorIndex, 512)
	for i := range table {
		table[i] = primitives.ValidatorIndex(i * 10)
	}
	got, err := srv.ValidatorsBySlot(ctx, 3, table)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got.Count)
	assert.DeepEqual(t, []primitives.ValidatorIndex{0, 10, 20, 5110}, got.ValidatorsIndices)
	assert.Equal(t, "0x0a0b0c", got.Signature)
	assert.Equal(t, true, strings.HasPrefix(got.Bitlist, "111"))

	enc, err := jsoniter.Marshal(got)
	require.NoError(t, err)
	assert.StringContains(t, `"validators_indicies":[0,10,20,5110]`, string(enc))
}
