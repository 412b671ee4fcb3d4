package node

import (
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/sync"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/time/slots"
)

// Option for beacon node configuration.
type Option func(bn *BeaconNode) error

// WithBlockFetcher sets the component used to request unknown parent blocks.
func WithBlockFetcher(f sync.BlockFetcher) Option {
	return func(bn *BeaconNode) error {
		bn.fetcher = f
		return nil
	}
}

// WithGenesisBlock sets the block anchoring an empty database.
func WithGenesisBlock(b *blocks.BeaconBlock) Option {
	return func(bn *BeaconNode) error {
		bn.genesis = b
		return nil
	}
}

// WithSlotTicker replaces the wall clock slot ticker.
func WithSlotTicker(newTicker func() slots.Ticker) Option {
	return func(bn *BeaconNode) error {
		bn.newTicker = newTicker
		return nil
	}
}
