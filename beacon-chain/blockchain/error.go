package blockchain

import "github.com/pkg/errors"

var (
	// errSlotNotAfterParent is returned when a block's slot does not exceed its parent's.
	errSlotNotAfterParent = errors.New("block slot is not greater than parent slot")
	// errMissingStateRoot is returned when a block commits to an empty state root.
	errMissingStateRoot = errors.New("block has an empty state root")
	// errNilDatabase is returned when the service is created without a database.
	errNilDatabase = errors.New("nil beacon database")
)

// An invalid block is a block that can never be imported, whichever blocks
// arrive later.
type invalidBlock struct {
	error
	root [32]byte
}

// BlockRoot returns the invalid block root.
func (e invalidBlock) BlockRoot() [32]byte {
	return e.root
}

// IsInvalidBlock returns true if the error has `invalidBlock`.
func IsInvalidBlock(e error) bool {
	if e == nil {
		return false
	}
	var d invalidBlock
	return errors.As(e, &d)
}
