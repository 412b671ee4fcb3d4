package node

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
	"github.com/prysmaticlabs/beacon-crawler/time/slots"
)

type recordingNotifier struct {
	lock  sync.Mutex
	slots []primitives.Slot
	err   error
}

func (r *recordingNotifier) OnSlot(slot primitives.Slot) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.slots = append(r.slots, slot)
	return r.err
}

type recordingPruner struct {
	before []primitives.Slot
	err    error
}

func (r *recordingPruner) PruneBefore(_ context.Context, slot primitives.Slot) (int, error) {
	r.before = append(r.before, slot)
	return 1, r.err
}

func TestSlotClock_OnSlot(t *testing.T) {
	n := &recordingNotifier{}
	p := &recordingPruner{}
	c := newSlotClock(context.Background(), nil, n, p, 10)

	c.onSlot(5)
	c.onSlot(10)
	c.onSlot(11)
	c.onSlot(30)

	assert.DeepEqual(t, []primitives.Slot{5, 10, 11, 30}, n.slots)
	assert.DeepEqual(t, []primitives.Slot{1, 20}, p.before)
}

func TestSlotClock_NotifierErrorDoesNotStopPruning(t *testing.T) {
	n := &recordingNotifier{err: errors.New("stopped")}
	p := &recordingPruner{err: errors.New("disk full")}
	c := newSlotClock(context.Background(), nil, n, p, 2)

	c.onSlot(3)
	c.onSlot(4)
	assert.DeepEqual(t, []primitives.Slot{1, 2}, p.before)
}

func TestSlotClock_StartStop(t *testing.T) {
	ticker := &manualTicker{c: make(chan primitives.Slot)}
	n := &recordingNotifier{}
	c := newSlotClock(context.Background(), func() slots.Ticker { return ticker }, n, nil, 0)
	c.Start()
	ticker.c <- 1
	ticker.c <- 2
	require.NoError(t, c.Stop())
	assert.NoError(t, c.Status())

	n.lock.Lock()
	defer n.lock.Unlock()
	assert.DeepEqual(t, []primitives.Slot{1, 2}, n.slots)
}
