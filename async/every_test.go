package async_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prysmaticlabs/beacon-crawler/async"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
)

func TestRunEvery_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	i := int32(0)
	async.RunEvery(ctx, 100*time.Millisecond, func() {
		atomic.AddInt32(&i, 1)
	})

	time.Sleep(250 * time.Millisecond)
	assert.NotEqual(t, int32(0), atomic.LoadInt32(&i), "counter failed to increment with ticker")

	cancel()
	time.Sleep(100 * time.Millisecond)
	last := atomic.LoadInt32(&i)

	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, last, atomic.LoadInt32(&i), "counter incremented after cancel")
}

func TestRunEvery_CallsDoNotOverlap(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var running, overlaps int32
	async.RunEvery(ctx, 10*time.Millisecond, func() {
		if atomic.AddInt32(&running, 1) > 1 {
			atomic.AddInt32(&overlaps, 1)
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt32(&running, -1)
	})

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&overlaps))
}
