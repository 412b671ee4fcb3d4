package kv

import (
	"context"
	"sort"
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

func TestStore_ContributionBytes_RoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	got, err := db.ContributionBytes(ctx, "12")
	require.NoError(t, err)
	assert.IsNil(t, got)

	want := []byte(`[{"slot":12}]`)
	require.NoError(t, db.SaveContributionBytes(ctx, "12", want))
	got, err = db.ContributionBytes(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Overwrite replaces the previous value.
	require.NoError(t, db.SaveContributionBytes(ctx, "12", []byte("[]")))
	got, err = db.ContributionBytes(ctx, "12")
	require.NoError(t, err)
	assert.DeepEqual(t, []byte("[]"), got)
}

func TestStore_SaveContributionBytes_EmptyKey(t *testing.T) {
	db := setupDB(t)
	assert.NotNil(t, db.SaveContributionBytes(context.Background(), "", []byte("x")))
}

func TestStore_DeleteContributions(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	for _, k := range []string{"1", "2", "30"} {
		require.NoError(t, db.SaveContributionBytes(ctx, k, []byte(k)))
	}
	require.NoError(t, db.DeleteContributions(ctx, []string{"2", "404"}))

	keys, err := db.ContributionKeys(ctx)
	require.NoError(t, err)
	sort.Strings(keys)
	assert.DeepEqual(t, []string{"1", "30"}, keys)
}
