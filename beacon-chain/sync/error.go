package sync

import "github.com/pkg/errors"

var (
	errServiceStopped   = errors.New("sync service is stopped")
	errInvalidAncestor  = errors.New("block descends from an invalid block")
	errInvalidBlockRoot = errors.New("block root is registered as invalid")
	errNilOracle        = errors.New("nil block validity oracle")
	errNilChainView     = errors.New("nil chain view")
)

var errNoContributionSaver = errors.New("no contribution store configured")
