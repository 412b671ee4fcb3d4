package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

var errZeroBlockRoot = errors.New("cannot save block with zero root")

// Block retrieval by root. Returns nil without error when the block is unknown.
func (s *Store) Block(ctx context.Context, blockRoot [32]byte) (*blocks.BeaconBlock, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.Block")
	defer span.End()
	var blk *blocks.BeaconBlock
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(blocksBucket).Get(blockRoot[:])
		if enc == nil {
			return nil
		}
		blk = &blocks.BeaconBlock{}
		return decode(enc, blk)
	})
	return blk, err
}

// HasBlock checks if a block by root exists in the db.
func (s *Store) HasBlock(ctx context.Context, blockRoot [32]byte) bool {
	_, span := trace.StartSpan(ctx, "BeaconDB.HasBlock")
	defer span.End()
	exists := false
	if err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(blocksBucket).Get(blockRoot[:]) != nil
		return nil
	}); err != nil { // This view never returns an error, but we'll handle anyway for sanity.
		panic(err)
	}
	return exists
}

// SaveBlock to the db. The head root and highest block slot are advanced
// when the block is at a higher slot than anything stored before.
func (s *Store) SaveBlock(ctx context.Context, blk blocks.ROBlock) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveBlock")
	defer span.End()
	root := blk.Root()
	if root == [32]byte{} {
		return errZeroBlockRoot
	}
	enc, err := encode(blk.Block())
	if err != nil {
		return errors.Wrap(err, "could not encode block")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(blocksBucket).Put(root[:], enc); err != nil {
			return err
		}
		return updateHead(tx, root, blk.Slot())
	})
}
