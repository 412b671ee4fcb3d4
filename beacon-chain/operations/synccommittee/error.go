package synccommittee

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation/synccontribution"
)

var (
	// ErrNoContributions is returned when a slot holds no usable contribution.
	ErrNoContributions = synccontribution.ErrNoContributions

	nilMessageErr      = errors.New("sync committee message is nil")
	nilContributionErr = errors.New("sync committee contribution is nil")
)
