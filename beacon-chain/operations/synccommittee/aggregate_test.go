package synccommittee

import (
	"context"
	"testing"

	dbtest "github.com/prysmaticlabs/beacon-crawler/beacon-chain/db/testing"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/crypto/bls"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

func TestStore_Aggregate_NotFound(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.Aggregate(ctx, 1, nil)
	assert.ErrorIs(t, err, ErrNoContributions)

	// Messages alone carry no bits and cannot be aggregated.
	require.NoError(t, s.SaveSyncCommitteeMessage(ctx, &SyncCommitteeMessage{Slot: 1, ValidatorIndex: 3}))
	_, err = s.Aggregate(ctx, 1, nil)
	assert.ErrorIs(t, err, ErrNoContributions)
}

func TestStore_Aggregate_MergesSubcommittees(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSyncCommitteeMessage(ctx, &SyncCommitteeMessage{Slot: 5, ValidatorIndex: 99}))
	require.NoError(t, s.SaveSyncCommitteeContribution(ctx, contributionAndProof(5, 0, 10, 'a', 0, 1)))
	// Overlaps the first contribution and carries fewer bits.
	require.NoError(t, s.SaveSyncCommitteeContribution(ctx, contributionAndProof(5, 0, 11, 'b', 1)))
	require.NoError(t, s.SaveSyncCommitteeContribution(ctx, contributionAndProof(5, 2, 12, 'c', 0)))

	table := make([]primitives.ValidatorIndex, 512)
	for i := range table {
		table[i] = primitives.ValidatorIndex(1000 + i)
	}
	res, err := s.Aggregate(ctx, 5, table)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(5), res.Slot)
	assert.Equal(t, uint64(3), res.Count)
	assert.DeepEqual(t, []int{0, 1, 256}, res.AggregationBits.BitIndices())
	assert.DeepEqual(t, []primitives.ValidatorIndex{1000, 1001, 1256}, res.ValidatorIndices)
	assert.DeepEqual(t, []byte{'a', 'c'}, res.Signature)
	root := [32]byte{'r', 'a'}
	assert.DeepEqual(t, root[:], res.BeaconBlockRoot)
}

func TestStore_Aggregate_WithoutTable(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSyncCommitteeContribution(ctx, contributionAndProof(6, 0, 10, 'a', 0)))
	require.NoError(t, s.SaveSyncCommitteeContribution(ctx, contributionAndProof(6, 1, 11, 'b', 4)))

	res, err := s.Aggregate(ctx, 6, nil)
	require.NoError(t, err)
	assert.DeepEqual(t, []primitives.ValidatorIndex{10, 11}, res.ValidatorIndices)
	assert.Equal(t, uint64(2), res.Count)
}

func TestStore_Aggregate_RealSignatures(t *testing.T) {
	s := NewStore(&Config{DB: dbtest.SetupDB(t)})
	ctx := context.Background()
	root := [32]byte{'r', 'o', 'o', 't'}

	pubs := make([]bls.PublicKey, 0, 2)
	for i, sub := range []primitives.SubcommitteeIndex{0, 3} {
		sk, err := bls.RandKey()
		require.NoError(t, err)
		pubs = append(pubs, sk.PublicKey())
		cp := contributionAndProof(8, sub, primitives.ValidatorIndex(i), 'x', uint64(i))
		cp.Contribution.BlockRoot = root
		cp.Contribution.Signature = sk.Sign(root[:]).Marshal()
		require.NoError(t, s.SaveSyncCommitteeContribution(ctx, cp))
	}

	res, err := s.Aggregate(ctx, 8, nil)
	require.NoError(t, err)
	sig, err := bls.SignatureFromBytes(res.Signature)
	require.NoError(t, err)
	assert.Equal(t, true, sig.FastAggregateVerify(pubs, root))
}
