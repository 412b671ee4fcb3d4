// Package synccommittee keeps the sync committee contributions and messages
// seen on the network, one append-only list per slot, and derives sync
// aggregates from them.
package synccommittee

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/db/iface"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/crypto/bls"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation/synccontribution"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config for the store.
type Config struct {
	DB         iface.ContributionStore
	Aggregator bls.SignatureAggregator
	Strategy   synccontribution.Strategy
}

// Store holds the sync committee records of every slot in a ContributionStore.
// Writers to the same slot are serialized so that concurrent appends are not lost.
type Store struct {
	db         iface.ContributionStore
	aggregator bls.SignatureAggregator
	strategy   synccontribution.Strategy

	lock     sync.Mutex
	keyLocks map[string]*keyLock
}

// keyLock serializes writers of one slot key. refs counts the holders and
// waiters, the entry is dropped once it reaches zero.
type keyLock struct {
	sync.Mutex
	refs int
}

// NewStore creates a store over the given ContributionStore. A nil
// aggregator defaults to the blst aggregator.
func NewStore(cfg *Config) *Store {
	agg := cfg.Aggregator
	if agg == nil {
		agg = bls.Aggregator{}
	}
	return &Store{
		db:         cfg.DB,
		aggregator: agg,
		strategy:   cfg.Strategy,
		keyLocks:   make(map[string]*keyLock),
	}
}

// lockKey blocks until the caller holds key's lock and returns the function
// releasing it.
func (s *Store) lockKey(key string) func() {
	s.lock.Lock()
	l, ok := s.keyLocks[key]
	if !ok {
		l = &keyLock{}
		s.keyLocks[key] = l
	}
	l.refs++
	s.lock.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.lock.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.keyLocks, key)
		}
		s.lock.Unlock()
	}
}

// append adds c to the end of its slot's list.
func (s *Store) append(ctx context.Context, c *Contribution) error {
	key := c.Slot.Key()
	defer s.lockKey(key)()

	list, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	list = append(list, c)
	enc, err := json.Marshal(list)
	if err != nil {
		return errors.Wrap(err, "could not encode contributions")
	}
	return s.db.SaveContributionBytes(ctx, key, enc)
}

// load reads the list stored under key. An undecodable payload is logged and
// read as an empty list.
func (s *Store) load(ctx context.Context, key string) ([]*Contribution, error) {
	enc, err := s.db.ContributionBytes(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(enc) == 0 {
		return nil, nil
	}
	var list []*Contribution
	if err := json.Unmarshal(enc, &list); err != nil {
		contributionDecodeFailuresTotal.Inc()
		log.WithError(err).WithField("slot", key).Warn("Could not decode stored contributions")
		return nil, nil
	}
	return list, nil
}

// Contributions returns every record stored for slot, in insertion order.
func (s *Store) Contributions(ctx context.Context, slot primitives.Slot) ([]*Contribution, error) {
	list, err := s.load(ctx, slot.Key())
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoContributions
	}
	return list, nil
}

func (s *Store) logSaved(kind string, slot primitives.Slot, sub primitives.SubcommitteeIndex) {
	savedSyncContributionsTotal.WithLabelValues(kind).Inc()
	log.WithFields(logrus.Fields{
		"kind":         kind,
		"slot":         slot,
		"subcommittee": sub,
	}).Debug("Saved sync committee record")
}
