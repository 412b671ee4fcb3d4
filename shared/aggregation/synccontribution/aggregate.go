package synccontribution

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/crypto/bls"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sirupsen/logrus"
)

// ErrNoContributions is returned when there is nothing to aggregate, either
// because no contribution was supplied or because none could be selected.
var ErrNoContributions = errors.New("no sync contributions to aggregate")

// Config of an aggregation run.
type Config struct {
	SubnetCount uint64
	Strategy    Strategy
	Aggregator  bls.SignatureAggregator
}

// Result of aggregating the contributions of one slot.
type Result struct {
	// Selected holds the keys of the items that made it into the aggregate.
	Selected         []int
	Bits             bitfield.Bitlist
	ValidatorIndices []primitives.ValidatorIndex
	Signature        []byte
	Count            uint64
}

// Aggregate selects non-overlapping contributions, merges their bits and
// aggregates their signatures. When table maps every committee bit position to
// a validator index, the result lists the validators behind the merged bits.
// A missing or short table falls back to the indices carried by every item.
func Aggregate(items []*Item, table []primitives.ValidatorIndex, cfg *Config) (*Result, error) {
	if len(items) == 0 {
		return nil, ErrNoContributions
	}
	if cfg == nil || cfg.Aggregator == nil {
		return nil, errors.New("nil signature aggregator")
	}
	selected, err := SelectWithoutIntersections(items, cfg.SubnetCount, cfg.Strategy)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, ErrNoContributions
	}

	merged := MergeBitlists(items, selected)
	sigs := make([][]byte, len(selected))
	for i, k := range selected {
		sigs[i] = items[k].Signature
	}
	signature, err := cfg.Aggregator.AggregateSignatures(sigs)
	if err != nil {
		return nil, errors.Wrap(err, "could not aggregate contribution signatures")
	}

	var indices []primitives.ValidatorIndex
	if len(table) > 0 && uint64(len(table)) >= merged.Len() {
		for _, i := range merged.BitIndices() {
			indices = append(indices, table[i])
		}
	} else {
		indices = make([]primitives.ValidatorIndex, len(items))
		for i, item := range items {
			indices[i] = item.ValidatorIndex
		}
	}

	log.WithFields(logrus.Fields{
		"contributions": len(items),
		"selected":      len(selected),
		"bits":          merged.Count(),
	}).Debug("Aggregated sync contributions")

	return &Result{
		Selected:         selected,
		Bits:             merged,
		ValidatorIndices: indices,
		Signature:        signature,
		Count:            merged.Count(),
	}, nil
}
