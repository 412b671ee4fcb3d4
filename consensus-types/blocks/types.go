package blocks

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
)

// ErrNilBlock is returned when a nil block is wrapped.
var ErrNilBlock = errors.New("received nil beacon block")

// BeaconBlock is the header view of a beacon block. The body is committed to
// by its root only, which is all the import pipeline needs to link blocks.
type BeaconBlock struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// BeaconBlockIsNil checks if the block is nil.
func BeaconBlockIsNil(b *BeaconBlock) error {
	if b == nil {
		return ErrNilBlock
	}
	return nil
}

// Copy returns a deep copy of the block.
func (b *BeaconBlock) Copy() *BeaconBlock {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}
