// Package synccontribution selects and merges sync committee contributions
// collected for a single slot into one aggregate.
package synccontribution

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sirupsen/logrus"
)

const (
	// GreedyAggregation seeds a candidate with every multi-bit contribution in
	// turn, absorbs every disjoint contribution into it and keeps the largest.
	GreedyAggregation Strategy = "greedy"

	// MaxCoverAggregation runs the Maximum Coverage greedy algorithm over every
	// contribution of a subcommittee, disallowing overlaps.
	MaxCoverAggregation Strategy = "max_cover"
)

// Strategy defines the contribution selection strategy.
type Strategy string

// Item is one stored contribution as seen by the selector.
type Item struct {
	Subcommittee   primitives.SubcommitteeIndex
	Bits           bitfield.Bitlist
	ValidatorIndex primitives.ValidatorIndex
	Signature      []byte
}

// SelectWithoutIntersections partitions items by subcommittee and, within each
// subcommittee, selects contributions whose bits never overlap. The returned
// keys index into items, grouped by ascending subcommittee.
func SelectWithoutIntersections(items []*Item, subnetCount uint64, strategy Strategy) ([]int, error) {
	groups := make([][]int, subnetCount)
	for k, item := range items {
		if item == nil || len(item.Bits) == 0 {
			continue
		}
		if uint64(item.Subcommittee) >= subnetCount {
			log.WithFields(logrus.Fields{
				"subcommittee": item.Subcommittee,
				"subnetCount":  subnetCount,
			}).Debug("Ignoring contribution outside of subnet range")
			continue
		}
		groups[item.Subcommittee] = append(groups[item.Subcommittee], k)
	}

	selected := make([]int, 0, len(items))
	for sub, keys := range groups {
		if len(keys) == 0 {
			continue
		}
		var chosen []int
		var err error
		switch strategy {
		case "", GreedyAggregation:
			chosen = selectGreedy(items, keys)
		case MaxCoverAggregation:
			chosen, err = selectMaxCover(items, keys)
		default:
			return nil, errors.Wrapf(aggregation.ErrInvalidStrategy, "%q", strategy)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not select contributions of subcommittee %d", sub)
		}
		selected = append(selected, chosen...)
	}
	return selected, nil
}

// selectGreedy splits keys into multi-bit and single-bit contributions,
// dropping single-bit contributions whose bit was already seen. Each multi-bit
// contribution seeds a candidate that absorbs every single-bit contribution and
// then every other multi-bit contribution disjoint from the running merge. The
// first candidate with the strictly highest bit count wins. When there is no
// multi-bit contribution the deduplicated single-bit ones are selected.
func selectGreedy(items []*Item, keys []int) []int {
	var multi, singles []int
	seen := make(map[int]bool)
	for _, k := range keys {
		switch items[k].Bits.Count() {
		case 0:
		case 1:
			pos := items[k].Bits.BitIndices()[0]
			if seen[pos] {
				continue
			}
			seen[pos] = true
			singles = append(singles, k)
		default:
			multi = append(multi, k)
		}
	}
	if len(multi) == 0 {
		return singles
	}

	var best []int
	bestCount := -1
	for _, m := range multi {
		merged := bitfield.Bitlist(append([]byte(nil), items[m].Bits...))
		candidate := []int{m}
		absorb := func(k int) {
			bits := items[k].Bits
			if bits.Len() != merged.Len() {
				return
			}
			if overlaps, err := merged.Overlaps(bits); err != nil || overlaps {
				return
			}
			union, err := merged.Or(bits)
			if err != nil {
				return
			}
			merged = union
			candidate = append(candidate, k)
		}
		for _, s := range singles {
			absorb(s)
		}
		for _, other := range multi {
			if other != m {
				absorb(other)
			}
		}
		if count := int(merged.Count()); count > bestCount {
			best, bestCount = candidate, count
		}
	}
	return best
}

// selectMaxCover solves the subcommittee's maximum coverage problem without
// overlaps. Contributions whose length differs from the first one are left out.
func selectMaxCover(items []*Item, keys []int) ([]int, error) {
	var candidates aggregation.MaxCoverCandidates
	var width uint64
	for _, k := range keys {
		bits := items[k].Bits
		if bits.Count() == 0 {
			continue
		}
		if width == 0 {
			width = bits.Len()
		}
		if bits.Len() != width {
			continue
		}
		candidates = append(candidates, aggregation.NewMaxCoverCandidate(k, &items[k].Bits))
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	mc := &aggregation.MaxCoverProblem{Candidates: candidates}
	solution, err := mc.Cover(len(candidates), false)
	if err != nil {
		return nil, err
	}
	return solution.Keys, nil
}

// MergeBitlists ORs the bits of the selected items positionally. The first
// selected item seeds the result length; bits of later items past that length
// are dropped.
func MergeBitlists(items []*Item, selected []int) bitfield.Bitlist {
	if len(selected) == 0 {
		return nil
	}
	merged := bitfield.Bitlist(append([]byte(nil), items[selected[0]].Bits...))
	for _, k := range selected[1:] {
		for _, i := range items[k].Bits.BitIndices() {
			merged.SetBitAt(uint64(i), true)
		}
	}
	return merged
}
