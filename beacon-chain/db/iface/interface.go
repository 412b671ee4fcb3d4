// Package iface defines the actual database interface used
// by the beacon crawler, also containing useful, scoped interfaces such as
// a ReadOnlyDatabase and the raw ContributionStore.
package iface

import (
	"context"
	"io"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
)

// ContributionStore is a byte store of serialized sync contribution lists,
// keyed by decimal slot.
type ContributionStore interface {
	// ContributionBytes returns nil when nothing is stored under key.
	ContributionBytes(ctx context.Context, key string) ([]byte, error)
	SaveContributionBytes(ctx context.Context, key string, enc []byte) error
	ContributionKeys(ctx context.Context) ([]string, error)
	DeleteContributions(ctx context.Context, keys []string) error
}

// ReadOnlyDatabase defines a struct which only has read access to database methods.
type ReadOnlyDatabase interface {
	// Block related methods.
	Block(ctx context.Context, blockRoot [32]byte) (*blocks.BeaconBlock, error)
	HasBlock(ctx context.Context, blockRoot [32]byte) bool
	HeadBlockRoot(ctx context.Context) ([32]byte, error)
	HighestBlockSlot(ctx context.Context) (primitives.Slot, error)
	// Sync contribution related methods.
	ContributionBytes(ctx context.Context, key string) ([]byte, error)
	ContributionKeys(ctx context.Context) ([]string, error)

	DatabasePath() string
}

// Database interface with full access.
type Database interface {
	io.Closer
	ReadOnlyDatabase
	ContributionStore

	SaveBlock(ctx context.Context, block blocks.ROBlock) error
	ClearDB() error
	Backup(ctx context.Context, outputPath string, permissionOverride bool) error
}
