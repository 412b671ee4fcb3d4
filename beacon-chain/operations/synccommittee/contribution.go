package synccommittee

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/prysmaticlabs/beacon-crawler/encoding/bytesutil"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation/synccontribution"
)

// SaveSyncCommitteeContribution stores an aggregator's contribution. The
// subcommittee bits are widened to the whole committee so that contributions
// of different subcommittees can be merged positionally.
func (s *Store) SaveSyncCommitteeContribution(ctx context.Context, cp *ContributionAndProof) error {
	if cp == nil || cp.Contribution == nil || cp.Contribution.AggregationBits == nil {
		return nilContributionErr
	}
	c := cp.Contribution
	cfg := params.BeaconConfig()
	if c.AggregationBits.Len() != cfg.SyncSubcommitteeSize() {
		return errors.Errorf("wrong aggregation bits length, got %d wanted %d",
			c.AggregationBits.Len(), cfg.SyncSubcommitteeSize())
	}
	bits, err := synccontribution.ExpandSubcommitteeBits(c.AggregationBits, uint64(c.SubcommitteeIndex), cfg.SyncCommitteeSubnetCount)
	if err != nil {
		return err
	}
	if err := s.append(ctx, &Contribution{
		BeaconBlockRoot:   bytesutil.SafeCopyBytes(c.BlockRoot[:]),
		Slot:              c.Slot,
		SubcommitteeIndex: c.SubcommitteeIndex,
		AggregationBits:   bits,
		ValidatorIndex:    cp.AggregatorIndex,
		Signature:         bytesutil.SafeCopyBytes(c.Signature),
	}); err != nil {
		return err
	}
	s.logSaved("contribution", c.Slot, c.SubcommitteeIndex)
	return nil
}
