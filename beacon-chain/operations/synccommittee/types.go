package synccommittee

import (
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/go-bitfield"
)

// SyncCommitteeMessage is a single validator's signature over a beacon block root.
type SyncCommitteeMessage struct {
	Slot           primitives.Slot
	BlockRoot      [32]byte
	ValidatorIndex primitives.ValidatorIndex
	Signature      []byte
}

// SyncCommitteeContribution is the aggregate of one subcommittee's messages.
// AggregationBits spans the subcommittee only.
type SyncCommitteeContribution struct {
	Slot              primitives.Slot
	BlockRoot         [32]byte
	SubcommitteeIndex primitives.SubcommitteeIndex
	AggregationBits   bitfield.Bitfield
	Signature         []byte
}

// ContributionAndProof wraps a contribution with its aggregator.
type ContributionAndProof struct {
	AggregatorIndex primitives.ValidatorIndex
	Contribution    *SyncCommitteeContribution
	SelectionProof  []byte
}

// Contribution is the stored record. Records built from a single message
// carry no aggregation bits.
type Contribution struct {
	BeaconBlockRoot   []byte                       `json:"beacon_block_root"`
	Slot              primitives.Slot              `json:"slot"`
	SubcommitteeIndex primitives.SubcommitteeIndex `json:"subcommittee_index"`
	AggregationBits   bitfield.Bitlist             `json:"aggregation_bits"`
	ValidatorIndex    primitives.ValidatorIndex    `json:"validator_index"`
	Signature         []byte                       `json:"signature"`
}

// AggregateResult is the sync aggregate derived from a slot's contributions.
type AggregateResult struct {
	Slot             primitives.Slot
	BeaconBlockRoot  []byte
	Signature        []byte
	AggregationBits  bitfield.Bitlist
	ValidatorIndices []primitives.ValidatorIndex
	Count            uint64
}
