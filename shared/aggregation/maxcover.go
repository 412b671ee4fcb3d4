package aggregation

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// ErrInvalidMaxCoverProblem is returned when Maximum Coverage problem was initialized incorrectly.
var ErrInvalidMaxCoverProblem = errors.New("invalid max_cover problem")

// MaxCoverProblem defines Maximum Coverage problem.
type MaxCoverProblem struct {
	Candidates MaxCoverCandidates
}

// MaxCoverCandidate represents a candidate set to be used in aggregation.
type MaxCoverCandidate struct {
	key       int
	bits      *bitfield.Bitlist
	score     uint64
	processed bool
}

// MaxCoverCandidates is defined to allow group operations (filtering, sorting) on all candidates.
type MaxCoverCandidates []*MaxCoverCandidate

// MaxCoverSolution represents the solution as bitlist of resultant coverage, and indices in
// attributes array grouped by aggregations.
type MaxCoverSolution struct {
	Coverage bitfield.Bitlist
	Keys     []int
}

// NewMaxCoverCandidate returns initialized candidate.
func NewMaxCoverCandidate(key int, bits *bitfield.Bitlist) *MaxCoverCandidate {
	return &MaxCoverCandidate{
		key:  key,
		bits: bits,
	}
}

// Cover calculates solution to Maximum k-Cover problem.
func (mc *MaxCoverProblem) Cover(k int, allowOverlaps bool) (*MaxCoverSolution, error) {
	if len(mc.Candidates) == 0 {
		return nil, errors.Wrap(ErrInvalidMaxCoverProblem, "cannot calculate Cover")
	}
	if err := mc.Candidates.validate(); err != nil {
		return nil, err
	}
	if len(mc.Candidates) < k {
		k = len(mc.Candidates)
	}

	remainingBits, err := mc.Candidates.union()
	if err != nil {
		return nil, err
	}
	solution := &MaxCoverSolution{
		Coverage: bitfield.NewBitlist(mc.Candidates[0].bits.Len()),
		Keys:     make([]int, 0, k),
	}

	for len(solution.Keys) < k && len(mc.Candidates) > 0 {
		// Score candidates against remaining bits.
		// Filter out processed and overlapping (when disallowed).
		// Sort by score in a descending order.
		if _, err := mc.Candidates.score(remainingBits); err != nil {
			return nil, err
		}
		if _, err := mc.Candidates.filter(solution.Coverage, allowOverlaps); err != nil {
			return nil, err
		}
		mc.Candidates.sort()

		for _, candidate := range mc.Candidates {
			if len(solution.Keys) >= k {
				break
			}
			if !candidate.processed {
				overlaps, err := solution.Coverage.Overlaps(*candidate.bits)
				if err != nil {
					return nil, err
				}
				if !allowOverlaps && overlaps {
					// Overlapping candidates violate non-intersection invariant.
					candidate.processed = true
					continue
				}

				solution.Coverage, err = solution.Coverage.Or(*candidate.bits)
				if err != nil {
					return nil, err
				}
				remainingBits, err = remainingBits.And(candidate.bits.Not())
				if err != nil {
					return nil, err
				}
				solution.Keys = append(solution.Keys, candidate.key)
				candidate.processed = true
				break
			}
		}
	}
	return solution, nil
}

// validate ensures every candidate has the same bitlist length as the first one.
func (cl *MaxCoverCandidates) validate() error {
	for i := 1; i < len(*cl); i++ {
		if (*cl)[i].bits.Len() != (*cl)[0].bits.Len() {
			return ErrBitsDifferentLen
		}
	}
	return nil
}

// score updates scores of candidates, taking into account the uncovered elements only.
func (cl *MaxCoverCandidates) score(uncovered bitfield.Bitlist) (*MaxCoverCandidates, error) {
	for i := 0; i < len(*cl); i++ {
		remaining, err := (*cl)[i].bits.And(uncovered)
		if err != nil {
			return nil, err
		}
		(*cl)[i].score = remaining.Count()
	}
	return cl, nil
}

// filter removes processed, overlapping and zero-score candidates.
func (cl *MaxCoverCandidates) filter(covered bitfield.Bitlist, allowOverlaps bool) (*MaxCoverCandidates, error) {
	overlaps := func(e bitfield.Bitlist) (bool, error) {
		if allowOverlaps || covered.Len() != e.Len() {
			return false, nil
		}
		return covered.Overlaps(e)
	}
	cur, end := 0, len(*cl)
	for cur < end {
		e := *(*cl)[cur]
		o, err := overlaps(*e.bits)
		if err != nil {
			return nil, err
		}
		if e.processed || o || e.score == 0 {
			(*cl)[cur] = (*cl)[end-1]
			end--
			continue
		}
		cur++
	}
	*cl = (*cl)[:end]
	return cl, nil
}

// sort orders candidates by their score, starting from the candidate with the highest score.
func (cl *MaxCoverCandidates) sort() *MaxCoverCandidates {
	sort.Slice(*cl, func(i, j int) bool {
		if (*cl)[i].score == (*cl)[j].score {
			return (*cl)[i].key < (*cl)[j].key
		}
		return (*cl)[i].score > (*cl)[j].score
	})
	return cl
}

func (cl *MaxCoverCandidates) union() (bitfield.Bitlist, error) {
	if len(*cl) == 0 {
		return nil, nil
	}
	ret := bitfield.NewBitlist((*cl)[0].bits.Len())
	var err error
	for i := 0; i < len(*cl); i++ {
		ret, err = ret.Or(*(*cl)[i].bits)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// String provides string representation of candidates list.
func (cl *MaxCoverCandidates) String() string {
	return fmt.Sprintf("candidates: %v", *cl)
}

// String provides string representation of a candidate.
func (c *MaxCoverCandidate) String() string {
	return fmt.Sprintf("{%v, %#b:%d, s%d, %t}",
		c.key, c.bits.Bytes(), c.bits.Len(), c.score, c.processed)
}

// String provides string representation of a Maximum Coverage problem solution.
func (s *MaxCoverSolution) String() string {
	return fmt.Sprintf("{%#b:%v}", s.Coverage.Bytes(), s.Keys)
}
