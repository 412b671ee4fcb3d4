package slots

import (
	"testing"
	"time"

	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
)

func TestCurrentSlot(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	secondsPerSlot := params.BeaconConfig().SecondsPerSlot
	now := uint64(time.Now().Unix())

	assert.Equal(t, primitives.Slot(0), CurrentSlot(now+100))
	assert.Equal(t, primitives.Slot(10), CurrentSlot(now-10*secondsPerSlot))
}

func TestStartTime(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	genesis := uint64(1000)
	got := StartTime(genesis, 3)
	want := time.Unix(int64(genesis+3*params.BeaconConfig().SecondsPerSlot), 0)
	assert.Equal(t, want, got)
}

func TestSinceGenesis(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	assert.Equal(t, primitives.Slot(0), SinceGenesis(time.Time{}))
	d := time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second
	assert.Equal(t, primitives.Slot(4), SinceGenesis(time.Now().Add(-4*d-time.Second)))
}
