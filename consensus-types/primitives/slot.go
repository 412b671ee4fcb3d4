package primitives

import (
	"fmt"
)

// Slot represents a single slot.
type Slot uint64

// Add increases slot by x.
func (s Slot) Add(x uint64) Slot {
	return s + Slot(x)
}

// Sub subtracts x from the slot, saturating at zero.
func (s Slot) Sub(x uint64) Slot {
	if uint64(s) < x {
		return 0
	}
	return s - Slot(x)
}

// Mod returns result of `slot % x`.
func (s Slot) Mod(x uint64) Slot {
	if x == 0 {
		return 0
	}
	return s % Slot(x)
}

// Key returns the decimal representation of the slot, the form used to key
// per-slot records in storage.
func (s Slot) Key() string {
	return fmt.Sprintf("%d", uint64(s))
}
