package blockchain

import (
	"context"
	"testing"

	dbtest "github.com/prysmaticlabs/beacon-crawler/beacon-chain/db/testing"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/sync"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
	"github.com/prysmaticlabs/beacon-crawler/testing/util"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

func setupService(t *testing.T, current primitives.Slot) *Service {
	s, err := NewService(context.Background(), &Config{
		BeaconDB:    dbtest.SetupDB(t),
		CurrentSlot: func() primitives.Slot { return current },
	})
	require.NoError(t, err)
	return s
}

func TestNewService_SavesGenesis(t *testing.T) {
	beaconDB := dbtest.SetupDB(t)
	clock := func() primitives.Slot { return 0 }
	s, err := NewService(context.Background(), &Config{BeaconDB: beaconDB, CurrentSlot: clock})
	require.NoError(t, err)
	assert.Equal(t, true, s.HasBlock(context.Background(), s.GenesisRoot()))

	// A second service over the same db reuses the anchor.
	s2, err := NewService(context.Background(), &Config{BeaconDB: beaconDB, CurrentSlot: clock})
	require.NoError(t, err)
	assert.Equal(t, s.GenesisRoot(), s2.GenesisRoot())

	_, err = NewService(context.Background(), &Config{CurrentSlot: clock})
	assert.ErrorIs(t, err, errNilDatabase)
}

func TestImportBlock_Success(t *testing.T) {
	hook := logTest.NewGlobal()
	s := setupService(t, 10)
	ctx := context.Background()

	blk := util.NewROBlock(t, 1, s.GenesisRoot(), 3)
	res := s.ImportBlock(ctx, blk)
	require.Equal(t, sync.ImportSuccess, res.Status)
	assert.NoError(t, res.Reason)
	assert.Equal(t, true, s.HasBlock(ctx, blk.Root()))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Imported block", hook.LastEntry().Message)

	head, err := s.cfg.BeaconDB.HeadBlockRoot(ctx)
	require.NoError(t, err)
	assert.Equal(t, blk.Root(), head)
}

func TestImportBlock_Outcomes(t *testing.T) {
	s := setupService(t, 10)
	ctx := context.Background()
	parent := util.NewROBlock(t, 5, s.GenesisRoot(), 0)
	require.Equal(t, sync.ImportSuccess, s.ImportBlock(ctx, parent).Status)

	noState := util.NewBeaconBlock(6, parent.Root(), 0)
	noState.StateRoot = [32]byte{}
	noStateBlk, err := blocks.NewROBlock(noState)
	require.NoError(t, err)

	tests := []struct {
		name    string
		blk     blocks.ROBlock
		status  sync.ImportStatus
		invalid bool
	}{
		{name: "future slot", blk: util.NewROBlock(t, 11, parent.Root(), 0), status: sync.ImportFutureSlot},
		{name: "unknown parent", blk: util.NewROBlock(t, 6, [32]byte{'?'}, 0), status: sync.ImportUnknownParent},
		{name: "slot not after parent", blk: util.NewROBlock(t, 5, parent.Root(), 1), status: sync.ImportOtherFailure, invalid: true},
		{name: "empty state root", blk: noStateBlk, status: sync.ImportOtherFailure, invalid: true},
		{name: "child", blk: util.NewROBlock(t, 7, parent.Root(), 0), status: sync.ImportSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.ImportBlock(ctx, tt.blk)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.invalid, IsInvalidBlock(res.Reason))
			assert.Equal(t, tt.status == sync.ImportSuccess, s.HasBlock(ctx, tt.blk.Root()))
		})
	}
}

func TestService_LifeCycle(t *testing.T) {
	s := setupService(t, 0)
	s.Start()
	assert.NoError(t, s.Status())
	assert.NoError(t, s.Stop())
}
