package kv

import (
	"context"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// HeadBlockRoot returns the root of the highest-slot block saved so far,
// or the zero root when the db holds no blocks.
func (s *Store) HeadBlockRoot(ctx context.Context) ([32]byte, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.HeadBlockRoot")
	defer span.End()
	var root [32]byte
	err := s.db.View(func(tx *bolt.Tx) error {
		copy(root[:], tx.Bucket(chainMetadataBucket).Get(headBlockRootKey))
		return nil
	})
	return root, err
}

// HighestBlockSlot returns the slot of the head block.
func (s *Store) HighestBlockSlot(ctx context.Context) (primitives.Slot, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.HighestBlockSlot")
	defer span.End()
	var slot primitives.Slot
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		slot, err = highestSlot(tx)
		return err
	})
	return slot, err
}

func highestSlot(tx *bolt.Tx) (primitives.Slot, error) {
	enc := tx.Bucket(chainMetadataBucket).Get(highestBlockSlotKey)
	if enc == nil {
		return 0, nil
	}
	var s primitives.SSZUint64
	if err := decode(enc, &s); err != nil {
		return 0, err
	}
	return primitives.Slot(s), nil
}

func updateHead(tx *bolt.Tx, root [32]byte, slot primitives.Slot) error {
	bkt := tx.Bucket(chainMetadataBucket)
	current, err := highestSlot(tx)
	if err != nil {
		return err
	}
	if bkt.Get(headBlockRootKey) != nil && slot <= current {
		return nil
	}
	s := primitives.SSZUint64(slot)
	enc, err := encode(&s)
	if err != nil {
		return err
	}
	if err := bkt.Put(highestBlockSlotKey, enc); err != nil {
		return err
	}
	return bkt.Put(headBlockRootKey, root[:])
}
