package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

func TestStore_Backup(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	blk, err := blocks.NewROBlock(&blocks.BeaconBlock{Slot: 12, StateRoot: [32]byte{1}})
	require.NoError(t, err)
	require.NoError(t, db.SaveBlock(ctx, blk))

	require.NoError(t, db.Backup(ctx, "", false))

	backupsPath := filepath.Join(db.databasePath, backupsDirectoryName)
	files, err := os.ReadDir(backupsPath)
	require.NoError(t, err)
	require.Equal(t, 1, len(files))
	assert.Equal(t, "beaconcrawler_at_slot_0000012.backup", files[0].Name())

	// The backup opens as a store holding the same block.
	restored, err := NewKVStore(ctx, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, restored.Close())
	require.NoError(t, os.Rename(filepath.Join(backupsPath, files[0].Name()), filepath.Join(restored.databasePath, DatabaseFileName)))
	restored, err = NewKVStore(ctx, restored.databasePath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, restored.Close())
	}()
	assert.Equal(t, true, restored.HasBlock(ctx, blk.Root()))
}

func TestStore_Backup_DirectoryPermissions(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "open")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.Chmod(dir, 0755))

	assert.ErrorContains(t, "0700 permissions", db.Backup(ctx, dir, false))
	require.NoError(t, db.Backup(ctx, dir, true))
}
