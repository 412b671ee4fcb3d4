package kv

import (
	"context"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// ContributionBytes returns the serialized contribution list stored under key,
// or nil when the key is absent.
func (s *Store) ContributionBytes(ctx context.Context, key string) ([]byte, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.ContributionBytes")
	defer span.End()
	var enc []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(syncContributionBucket).Get([]byte(key))
		if v == nil {
			return nil
		}
		var err error
		enc, err = snappy.Decode(nil, v)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not read contributions for key %s", key)
	}
	return enc, nil
}

// SaveContributionBytes overwrites the value stored under key.
func (s *Store) SaveContributionBytes(ctx context.Context, key string, enc []byte) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveContributionBytes")
	defer span.End()
	if key == "" {
		return errors.New("empty contribution key")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(syncContributionBucket).Put([]byte(key), snappy.Encode(nil, enc))
	})
}

// ContributionKeys lists every key in the contributions bucket.
func (s *Store) ContributionKeys(ctx context.Context) ([]string, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.ContributionKeys")
	defer span.End()
	keys := make([]string, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(syncContributionBucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// DeleteContributions removes the given keys. Missing keys are ignored.
func (s *Store) DeleteContributions(ctx context.Context, keys []string) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.DeleteContributions")
	defer span.End()
	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(syncContributionBucket)
		for _, k := range keys {
			if err := bkt.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
}
