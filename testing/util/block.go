// Package util contains helpers that generate beacon blocks for tests.
package util

import (
	"encoding/binary"
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

// NewBeaconBlock creates a beacon block at the given slot linked to parent.
// The proposer index is folded into the body root so that two blocks at the
// same slot and parent produced by different proposers have distinct roots.
func NewBeaconBlock(slot primitives.Slot, parent [32]byte, proposer primitives.ValidatorIndex) *blocks.BeaconBlock {
	var body [32]byte
	binary.LittleEndian.PutUint64(body[:8], uint64(slot))
	binary.LittleEndian.PutUint64(body[8:16], uint64(proposer))
	return &blocks.BeaconBlock{
		Slot:          slot,
		ProposerIndex: proposer,
		ParentRoot:    parent,
		StateRoot:     [32]byte{'s'},
		BodyRoot:      body,
	}
}

// NewROBlock wraps NewBeaconBlock, failing the test on error.
func NewROBlock(t testing.TB, slot primitives.Slot, parent [32]byte, proposer primitives.ValidatorIndex) blocks.ROBlock {
	rob, err := blocks.NewROBlock(NewBeaconBlock(slot, parent, proposer))
	require.NoError(t, err)
	return rob
}

// NewChain generates n blocks at consecutive slots starting at start, each
// one the child of the previous and the first one the child of parent.
func NewChain(t testing.TB, parent [32]byte, start primitives.Slot, n int) []blocks.ROBlock {
	chain := make([]blocks.ROBlock, 0, n)
	for i := 0; i < n; i++ {
		rob := NewROBlock(t, start.Add(uint64(i)), parent, 0)
		chain = append(chain, rob)
		parent = rob.Root()
	}
	return chain
}
