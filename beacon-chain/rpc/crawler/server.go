// Package crawler defines the query surface of the beacon crawler over the
// sync committee records it collected.
package crawler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/operations/synccommittee"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation/synccontribution"
)

// ErrNotFound is returned when no usable record exists for the requested slot.
var ErrNotFound = errors.New("no sync committee records found for slot")

// SyncCommitteePool is the read side of the sync committee store.
type SyncCommitteePool interface {
	Contributions(ctx context.Context, slot primitives.Slot) ([]*synccommittee.Contribution, error)
	Aggregate(ctx context.Context, slot primitives.Slot, table []primitives.ValidatorIndex) (*synccommittee.AggregateResult, error)
}

// SyncMessageData is the display form of a stored record.
type SyncMessageData struct {
	Slot              primitives.Slot              `json:"slot"`
	BeaconRoot        string                       `json:"beacon_root"`
	Signature         string                       `json:"signature"`
	Bitlist           string                       `json:"bitlist"`
	ValidatorIndex    primitives.ValidatorIndex    `json:"validator_index"`
	SubcommitteeIndex primitives.SubcommitteeIndex `json:"sub_committee_index"`
}

// ValidatorsData is the display form of a slot's sync aggregate.
type ValidatorsData struct {
	Slot              primitives.Slot             `json:"slot"`
	BeaconRoot        string                      `json:"beacon_root"`
	Signature         string                      `json:"signature"`
	Bitlist           string                      `json:"bitlist"`
	ValidatorsIndices []primitives.ValidatorIndex `json:"validators_indicies"`
	Count             uint64                      `json:"count"`
}

// Server answers queries over the sync committee records.
type Server struct {
	Pool SyncCommitteePool
}

// SyncMessagesBySlot returns every record stored for slot, in insertion order.
func (s *Server) SyncMessagesBySlot(ctx context.Context, slot primitives.Slot) ([]*SyncMessageData, error) {
	list, err := s.Pool.Contributions(ctx, slot)
	if err != nil {
		return nil, notFoundOr(err)
	}
	out := make([]*SyncMessageData, len(list))
	for i, c := range list {
		out[i] = &SyncMessageData{
			Slot:              c.Slot,
			BeaconRoot:        fmt.Sprintf("%#x", c.BeaconBlockRoot),
			Signature:         fmt.Sprintf("%#x", c.Signature),
			Bitlist:           synccontribution.BitlistToString(c.AggregationBits),
			ValidatorIndex:    c.ValidatorIndex,
			SubcommitteeIndex: c.SubcommitteeIndex,
		}
	}
	return out, nil
}

// ValidatorsBySlot returns the sync aggregate of slot. When table is given,
// position i of the committee maps to validator table[i] and the result lists
// the validators that participated.
func (s *Server) ValidatorsBySlot(ctx context.Context, slot primitives.Slot, table []primitives.ValidatorIndex) (*ValidatorsData, error) {
	res, err := s.Pool.Aggregate(ctx, slot, table)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &ValidatorsData{
		Slot:              res.Slot,
		BeaconRoot:        fmt.Sprintf("%#x", res.BeaconBlockRoot),
		Signature:         fmt.Sprintf("%#x", res.Signature),
		Bitlist:           synccontribution.BitlistToString(res.AggregationBits),
		ValidatorsIndices: res.ValidatorIndices,
		Count:             res.Count,
	}, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, synccommittee.ErrNoContributions) {
		return ErrNotFound
	}
	return err
}
