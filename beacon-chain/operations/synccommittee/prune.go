package synccommittee

import (
	"context"
	"sort"
	"strconv"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
)

// PruneBefore deletes the records of every slot older than slot and returns
// the number of slots removed. Keys that are not slot numbers are left alone.
func (s *Store) PruneBefore(ctx context.Context, slot primitives.Slot) (int, error) {
	keys, err := s.db.ContributionKeys(ctx)
	if err != nil {
		return 0, err
	}
	expired := make([]string, 0)
	for _, k := range keys {
		v, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		if primitives.Slot(v) < slot {
			expired = append(expired, k)
		}
	}
	if len(expired) == 0 {
		return 0, nil
	}

	// Keys are locked in sorted order so concurrent prunes cannot deadlock.
	sort.Strings(expired)
	for _, k := range expired {
		defer s.lockKey(k)()
	}

	if err := s.db.DeleteContributions(ctx, expired); err != nil {
		return 0, err
	}
	prunedContributionSlotsTotal.Add(float64(len(expired)))
	log.WithField("count", len(expired)).WithField("before", slot).Debug("Pruned sync contributions")
	return len(expired), nil
}
