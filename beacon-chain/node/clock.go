package node

import (
	"context"
	"sync/atomic"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/time/slots"
	"github.com/sirupsen/logrus"
)

type slotNotifier interface {
	OnSlot(slot primitives.Slot) error
}

type contributionPruner interface {
	PruneBefore(ctx context.Context, slot primitives.Slot) (int, error)
}

// slotClock forwards every slot tick to the block import coordinator and
// prunes sync contributions older than the retention window.
type slotClock struct {
	ctx       context.Context
	cancel    context.CancelFunc
	newTicker func() slots.Ticker
	notifier  slotNotifier
	pruner    contributionPruner
	retention primitives.Slot
	done      chan struct{}
	started   int32
}

func newSlotClock(ctx context.Context, newTicker func() slots.Ticker, n slotNotifier, p contributionPruner, retention primitives.Slot) *slotClock {
	ctx, cancel := context.WithCancel(ctx)
	return &slotClock{
		ctx:       ctx,
		cancel:    cancel,
		newTicker: newTicker,
		notifier:  n,
		pruner:    p,
		retention: retention,
		done:      make(chan struct{}),
	}
}

// Start ticking.
func (c *slotClock) Start() {
	atomic.StoreInt32(&c.started, 1)
	ticker := c.newTicker()
	go func() {
		defer close(c.done)
		defer ticker.Done()
		for {
			select {
			case <-c.ctx.Done():
				return
			case slot := <-ticker.C():
				c.onSlot(slot)
			}
		}
	}()
}

// Stop ticking.
func (c *slotClock) Stop() error {
	c.cancel()
	if atomic.LoadInt32(&c.started) == 1 {
		<-c.done
	}
	return nil
}

// Status is always healthy.
func (c *slotClock) Status() error {
	return nil
}

func (c *slotClock) onSlot(slot primitives.Slot) {
	if err := c.notifier.OnSlot(slot); err != nil {
		log.WithError(err).WithField("slot", slot).Debug("Could not notify slot")
	}
	if c.pruner == nil || c.retention == 0 || slot <= c.retention {
		return
	}
	n, err := c.pruner.PruneBefore(c.ctx, slot-c.retention)
	if err != nil {
		log.WithError(err).Error("Could not prune sync contributions")
		return
	}
	if n > 0 {
		log.WithFields(logrus.Fields{
			"slot":   slot,
			"pruned": n,
		}).Debug("Pruned sync contributions")
	}
}
