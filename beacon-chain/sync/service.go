// Package sync contains the block import coordinator of the beacon crawler.
// Blocks whose parent is unknown are held until the parent is imported,
// blocks from future slots until their slot is reached, and blocks known to be
// invalid are rejected together with every block built on them.
package sync

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	gethevent "github.com/ethereum/go-ethereum/event"
	"github.com/prysmaticlabs/beacon-crawler/async"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/cache"
	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/sirupsen/logrus"
)

const (
	eventBufferSize = 1000
	poolStatsPeriod = 30 * time.Second
)

// Config defines the collaborators and bounds of the coordinator. Zero bounds
// are taken from the active beacon config.
type Config struct {
	Oracle        BlockValidityOracle
	Chain         ChainView
	Fetcher       BlockFetcher
	Contributions ContributionSaver
	// CurrentSlot seeds the pending window when the service starts.
	CurrentSlot func() primitives.Slot

	MaxInvalidBlockRoots    int
	HistoricalSlotTolerance primitives.Slot
	FutureSlotTolerance     primitives.Slot
	FetchRequestTTL         time.Duration
}

// Service is the block import coordinator. A single run loop owns the
// decisions taken on every block, and oracle calls run on their own
// goroutines and report back to the loop.
type Service struct {
	cfg    *Config
	ctx    context.Context
	cancel context.CancelFunc

	events   chan event
	pending  *cache.PendingBlocks
	future   *cache.FutureBlocks
	invalid  *cache.InvalidBlockRoots
	fetches  *RecentFetches
	inFlight map[[32]byte]bool

	importFeed    *gethevent.Feed
	notifications chan blocks.ROBlock

	loopDone chan struct{}
	workers  sync.WaitGroup
	started  int32
}

// NewService creates the coordinator. It does not start processing until
// Start is called.
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	if cfg.Oracle == nil {
		return nil, errNilOracle
	}
	if cfg.Chain == nil {
		return nil, errNilChainView
	}
	c := *cfg
	beaconCfg := params.BeaconConfig()
	if c.MaxInvalidBlockRoots == 0 {
		c.MaxInvalidBlockRoots = beaconCfg.MaxInvalidBlockRoots
	}
	if c.HistoricalSlotTolerance == 0 {
		c.HistoricalSlotTolerance = beaconCfg.PendingBlockHistoricalSlotTolerance
	}
	if c.FutureSlotTolerance == 0 {
		c.FutureSlotTolerance = beaconCfg.PendingBlockFutureSlotTolerance
	}
	if c.FetchRequestTTL == 0 {
		c.FetchRequestTTL = beaconCfg.FetchRequestTTL()
	}
	invalid, err := cache.NewInvalidBlockRoots(c.MaxInvalidBlockRoots)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		cfg:           &c,
		ctx:           ctx,
		cancel:        cancel,
		events:        make(chan event, eventBufferSize),
		pending:       cache.NewPendingBlocks(c.HistoricalSlotTolerance, c.FutureSlotTolerance),
		future:        cache.NewFutureBlocks(),
		invalid:       invalid,
		fetches:       NewRecentFetches(c.FetchRequestTTL),
		inFlight:      make(map[[32]byte]bool),
		importFeed:    new(gethevent.Feed),
		notifications: make(chan blocks.ROBlock, importNotifyBufferSize),
		loopDone:      make(chan struct{}),
	}, nil
}

// Start the run loop.
func (s *Service) Start() {
	atomic.StoreInt32(&s.started, 1)
	if s.cfg.CurrentSlot != nil {
		select {
		case s.events <- slotTickEvent{slot: s.cfg.CurrentSlot()}:
		default:
		}
	}
	go s.run()
	go s.notifyImported()
	async.RunEvery(s.ctx, poolStatsPeriod, s.logPoolSizes)
}

// Stop the run loop and wait for outstanding oracle calls to return.
func (s *Service) Stop() error {
	s.cancel()
	if atomic.LoadInt32(&s.started) == 1 {
		<-s.loopDone
	}
	s.workers.Wait()
	return nil
}

// Status reports an error once the service has been stopped.
func (s *Service) Status() error {
	if s.ctx.Err() != nil {
		return errServiceStopped
	}
	return nil
}

// ReceiveBlock hands a block to the coordinator. It returns once the block is
// queued, not once it is processed.
func (s *Service) ReceiveBlock(ctx context.Context, blk blocks.ROBlock) error {
	return s.post(ctx, blockArrivedEvent{ctx: ctx, blk: blk})
}

// OnSlot notifies the coordinator that slot has started.
func (s *Service) OnSlot(slot primitives.Slot) error {
	return s.post(s.ctx, slotTickEvent{slot: slot})
}

// BlockImported notifies the coordinator of a block imported by another
// component.
func (s *Service) BlockImported(blk blocks.ROBlock) error {
	return s.post(s.ctx, importCompletedEvent{blk: blk})
}

func (s *Service) post(ctx context.Context, e event) error {
	if s.ctx.Err() != nil {
		return errServiceStopped
	}
	select {
	case s.events <- e:
		return nil
	case <-s.ctx.Done():
		return errServiceStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) logPoolSizes() {
	log.WithFields(logrus.Fields{
		"pending":       s.pending.Len(),
		"future":        s.future.Len(),
		"invalid":       s.invalid.Len(),
		"recentFetches": s.fetches.Len(),
	}).Debug("Block pool sizes")
}

func (s *Service) run() {
	defer close(s.loopDone)
	for {
		select {
		case <-s.ctx.Done():
			log.Debug("Context closed, exiting routine")
			return
		case e := <-s.events:
			s.handle(e)
		}
	}
}

func (s *Service) handle(e event) {
	switch ev := e.(type) {
	case blockArrivedEvent:
		s.onBlockArrived(ev.ctx, ev.blk)
	case slotTickEvent:
		s.onSlotTick(ev.slot)
	case importCompletedEvent:
		s.onImportCompleted(ev.blk)
	case importResultEvent:
		s.onImportResult(ev.blk, ev.result)
	default:
		log.Errorf("Unknown event type %T", e)
	}
}
