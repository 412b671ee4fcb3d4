package sync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

var genesisRoot = [32]byte{'g', 'e', 'n'}

type mockChain struct {
	lock  sync.RWMutex
	roots map[[32]byte]bool
}

func newMockChain() *mockChain {
	return &mockChain{roots: map[[32]byte]bool{genesisRoot: true}}
}

func (c *mockChain) HasBlock(_ context.Context, root [32]byte) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.roots[root]
}

func (c *mockChain) add(root [32]byte) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.roots[root] = true
}

// mockOracle imports a block when its parent is in the chain and its slot has
// been reached.
type mockOracle struct {
	chain *mockChain

	lock        sync.Mutex
	currentSlot primitives.Slot
	invalid     map[[32]byte]bool
	panics      map[[32]byte]bool
	calls       map[[32]byte]int
	// onUnknownParent runs before an UnknownParent result is returned.
	onUnknownParent func(blk blocks.ROBlock)
}

func newMockOracle(chain *mockChain) *mockOracle {
	return &mockOracle{
		chain:   chain,
		invalid: make(map[[32]byte]bool),
		panics:  make(map[[32]byte]bool),
		calls:   make(map[[32]byte]int),
	}
}

func (o *mockOracle) ImportBlock(ctx context.Context, blk blocks.ROBlock) ImportResult {
	o.lock.Lock()
	o.calls[blk.Root()]++
	invalid, panics, current, hook := o.invalid[blk.Root()], o.panics[blk.Root()], o.currentSlot, o.onUnknownParent
	o.lock.Unlock()

	switch {
	case panics:
		panic("bad block")
	case invalid:
		return ImportResult{Status: ImportOtherFailure, Reason: errors.New("invalid state root")}
	case blk.Slot() > current:
		return ImportResult{Status: ImportFutureSlot}
	case !o.chain.HasBlock(ctx, blk.ParentRoot()):
		if hook != nil {
			hook(blk)
		}
		return ImportResult{Status: ImportUnknownParent}
	}
	o.chain.add(blk.Root())
	return ImportResult{Status: ImportSuccess}
}

func (o *mockOracle) setSlot(slot primitives.Slot) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.currentSlot = slot
}

func (o *mockOracle) markInvalid(root [32]byte) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.invalid[root] = true
}

func (o *mockOracle) callCount(root [32]byte) int {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.calls[root]
}

// newTestService creates a service whose run loop is not started, so tests
// can feed events one at a time.
func newTestService(t *testing.T, cfg *Config) *Service {
	s, err := NewService(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Stop())
	})
	return s
}

func arrive(s *Service, blk blocks.ROBlock) {
	s.handle(blockArrivedEvent{ctx: context.Background(), blk: blk})
}

// processNext handles the next queued event, normally an oracle result.
func processNext(t *testing.T, s *Service) {
	select {
	case e := <-s.events:
		s.handle(e)
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for event")
	}
}

func requireNoEvents(t *testing.T, s *Service) {
	require.Equal(t, 0, len(s.events), "unexpected queued event")
}
