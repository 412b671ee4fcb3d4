package synccommittee

import (
	"context"

	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/encoding/bytesutil"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation/synccontribution"
	"go.opencensus.io/trace"
)

// Aggregate derives the sync aggregate of slot from the stored contributions.
// Records without aggregation bits take no part. When table is empty the
// result lists the validator index of every participating record.
func (s *Store) Aggregate(ctx context.Context, slot primitives.Slot, table []primitives.ValidatorIndex) (*AggregateResult, error) {
	ctx, span := trace.StartSpan(ctx, "synccommittee.Aggregate")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("slot", int64(slot)))

	list, err := s.Contributions(ctx, slot)
	if err != nil {
		return nil, err
	}
	items := make([]*synccontribution.Item, 0, len(list))
	var root []byte
	for _, c := range list {
		if len(c.AggregationBits) == 0 {
			continue
		}
		if root == nil {
			root = c.BeaconBlockRoot
		}
		items = append(items, &synccontribution.Item{
			Subcommittee:   c.SubcommitteeIndex,
			Bits:           c.AggregationBits,
			ValidatorIndex: c.ValidatorIndex,
			Signature:      c.Signature,
		})
	}
	res, err := synccontribution.Aggregate(items, table, &synccontribution.Config{
		SubnetCount: params.BeaconConfig().SyncCommitteeSubnetCount,
		Strategy:    s.strategy,
		Aggregator:  s.aggregator,
	})
	if err != nil {
		return nil, err
	}
	selectedSyncAggregateTotal.Add(float64(len(res.Selected)))
	return &AggregateResult{
		Slot:             slot,
		BeaconBlockRoot:  bytesutil.SafeCopyBytes(root),
		Signature:        res.Signature,
		AggregationBits:  res.Bits,
		ValidatorIndices: res.ValidatorIndices,
		Count:            res.Count,
	}, nil
}
