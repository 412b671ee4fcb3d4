package sync

import (
	"context"

	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/operations/synccommittee"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
)

// ImportStatus is the outcome class of a block import attempt.
type ImportStatus int

const (
	// ImportSuccess means the block was imported into the chain.
	ImportSuccess ImportStatus = iota
	// ImportUnknownParent means the parent block is not known yet.
	ImportUnknownParent
	// ImportFutureSlot means the block's slot is ahead of the current slot.
	ImportFutureSlot
	// ImportOtherFailure means the block is invalid.
	ImportOtherFailure
)

func (s ImportStatus) String() string {
	switch s {
	case ImportSuccess:
		return "success"
	case ImportUnknownParent:
		return "unknown_parent"
	case ImportFutureSlot:
		return "future_slot"
	case ImportOtherFailure:
		return "other_failure"
	default:
		return "unknown"
	}
}

// ImportResult is returned by a BlockValidityOracle. Reason is set for
// failures only.
type ImportResult struct {
	Status ImportStatus
	Reason error
}

// BlockValidityOracle attempts to import a block into the chain.
type BlockValidityOracle interface {
	ImportBlock(ctx context.Context, blk blocks.ROBlock) ImportResult
}

// ChainView answers whether a block is already part of the chain.
type ChainView interface {
	HasBlock(ctx context.Context, root [32]byte) bool
}

// BlockFetcher requests blocks by root from the network.
type BlockFetcher interface {
	RequestBlock(ctx context.Context, root [32]byte) error
	CancelRequest(root [32]byte)
}

// ContributionSaver persists sync committee records received over gossip.
type ContributionSaver interface {
	SaveSyncCommitteeContribution(ctx context.Context, cp *synccommittee.ContributionAndProof) error
	SaveSyncCommitteeMessage(ctx context.Context, msg *synccommittee.SyncCommitteeMessage) error
}
