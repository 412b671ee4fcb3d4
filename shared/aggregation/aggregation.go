// Package aggregation contains the Maximum Coverage heuristic used to combine
// non-overlapping aggregation bitlists.
package aggregation

import "github.com/pkg/errors"

var (
	// ErrBitsDifferentLen is returned when two bitlists have different lengths.
	ErrBitsDifferentLen = errors.New("different bitlist lengths")

	// ErrInvalidStrategy is returned when an unknown selection strategy is requested.
	ErrInvalidStrategy = errors.New("invalid aggregation strategy")
)
