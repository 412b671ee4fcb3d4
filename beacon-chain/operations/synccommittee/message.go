package synccommittee

import (
	"context"

	"github.com/prysmaticlabs/beacon-crawler/encoding/bytesutil"
)

// SaveSyncCommitteeMessage stores a single validator's message. The record
// has no aggregation bits and carries the validator's index.
func (s *Store) SaveSyncCommitteeMessage(ctx context.Context, msg *SyncCommitteeMessage) error {
	if msg == nil {
		return nilMessageErr
	}
	if err := s.append(ctx, &Contribution{
		BeaconBlockRoot: bytesutil.SafeCopyBytes(msg.BlockRoot[:]),
		Slot:            msg.Slot,
		ValidatorIndex:  msg.ValidatorIndex,
		Signature:       bytesutil.SafeCopyBytes(msg.Signature),
	}); err != nil {
		return err
	}
	s.logSaved("message", msg.Slot, 0)
	return nil
}
