package slots

import (
	"time"

	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
)

// CurrentSlot returns the current slot as determined by the local clock and
// provided genesis time, in unix seconds.
func CurrentSlot(genesisTimeSec uint64) primitives.Slot {
	now := uint64(time.Now().Unix())
	if now < genesisTimeSec {
		return 0
	}
	return primitives.Slot((now - genesisTimeSec) / params.BeaconConfig().SecondsPerSlot)
}

// StartTime returns the start time of slot.
func StartTime(genesisTimeSec uint64, slot primitives.Slot) time.Time {
	duration := time.Second * time.Duration(uint64(slot)*params.BeaconConfig().SecondsPerSlot)
	return time.Unix(int64(genesisTimeSec), 0).Add(duration)
}

// SinceGenesis returns the number of slots elapsed since genesis.
func SinceGenesis(genesis time.Time) primitives.Slot {
	if genesis.IsZero() {
		return 0
	}
	return CurrentSlot(uint64(genesis.Unix()))
}
