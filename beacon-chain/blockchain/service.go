// Package blockchain defines the chain the crawler builds out of received
// blocks. It links every block to a parent already stored and answers which
// blocks are known, without running the state transition.
package blockchain

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/db"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/sync"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"go.opencensus.io/trace"
)

// Config options for the service.
type Config struct {
	BeaconDB db.Database
	// Genesis anchors an empty database. It defaults to an empty block at slot 0.
	Genesis *blocks.BeaconBlock
	// CurrentSlot reports the wall clock slot.
	CurrentSlot func() primitives.Slot
}

// Service stores imported blocks and serves as the block validity oracle and
// chain view of the sync service.
type Service struct {
	cfg         *Config
	ctx         context.Context
	cancel      context.CancelFunc
	genesisRoot [32]byte
}

var (
	_ sync.BlockValidityOracle = (*Service)(nil)
	_ sync.ChainView           = (*Service)(nil)
)

// NewService instantiates a new block service instance that will
// be registered into a running beacon crawler.
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	if cfg.BeaconDB == nil {
		return nil, errNilDatabase
	}
	c := *cfg
	if c.Genesis == nil {
		c.Genesis = &blocks.BeaconBlock{}
	}
	if c.CurrentSlot == nil {
		return nil, errors.New("nil slot clock")
	}
	genesis, err := blocks.NewROBlock(c.Genesis)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &Service{
		cfg:         &c,
		ctx:         ctx,
		cancel:      cancel,
		genesisRoot: genesis.Root(),
	}
	if !c.BeaconDB.HasBlock(ctx, genesis.Root()) {
		if err := c.BeaconDB.SaveBlock(ctx, genesis); err != nil {
			cancel()
			return nil, errors.Wrap(err, "could not save genesis block")
		}
		log.WithField("genesisRoot", fmt.Sprintf("%#x", genesis.Root())).Info("Saved genesis anchor block")
	}
	return s, nil
}

// Start the blockchain service.
func (s *Service) Start() {
	slot, err := s.cfg.BeaconDB.HighestBlockSlot(s.ctx)
	if err != nil {
		log.WithError(err).Error("Could not read head slot")
		return
	}
	headSlot.Set(float64(slot))
	log.WithField("headSlot", slot).Info("Starting blockchain service")
}

// Stop the blockchain service.
func (s *Service) Stop() error {
	s.cancel()
	return nil
}

// Status always returns nil unless the database is unavailable.
func (s *Service) Status() error {
	if s.cfg.BeaconDB.DatabasePath() == "" {
		return errors.New("no database path")
	}
	return nil
}

// GenesisRoot is the root of the anchor block.
func (s *Service) GenesisRoot() [32]byte {
	return s.genesisRoot
}

// HasBlock checks if the block is part of the chain.
func (s *Service) HasBlock(ctx context.Context, root [32]byte) bool {
	return s.cfg.BeaconDB.HasBlock(ctx, root)
}

// ImportBlock links blk to its stored parent and saves it.
func (s *Service) ImportBlock(ctx context.Context, blk blocks.ROBlock) sync.ImportResult {
	ctx, span := trace.StartSpan(ctx, "blockchain.ImportBlock")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("slot", int64(blk.Slot())))

	if blk.Slot() > s.cfg.CurrentSlot() {
		return sync.ImportResult{Status: sync.ImportFutureSlot}
	}
	if blk.Block().StateRoot == [32]byte{} {
		return s.invalid(blk, errMissingStateRoot)
	}
	parent, err := s.cfg.BeaconDB.Block(ctx, blk.ParentRoot())
	if err != nil {
		// The parent may be readable later; the block is kept.
		return sync.ImportResult{Status: sync.ImportUnknownParent, Reason: errors.Wrap(err, "could not read parent block")}
	}
	if parent == nil {
		return sync.ImportResult{Status: sync.ImportUnknownParent}
	}
	if blk.Slot() <= parent.Slot {
		return s.invalid(blk, errSlotNotAfterParent)
	}
	if err := s.cfg.BeaconDB.SaveBlock(ctx, blk); err != nil {
		return sync.ImportResult{Status: sync.ImportOtherFailure, Reason: errors.Wrap(err, "could not save block")}
	}
	importedBlocks.Inc()
	if slot, err := s.cfg.BeaconDB.HighestBlockSlot(ctx); err == nil {
		headSlot.Set(float64(slot))
	}
	logBlockImported(blk)
	return sync.ImportResult{Status: sync.ImportSuccess}
}

func (s *Service) invalid(blk blocks.ROBlock, err error) sync.ImportResult {
	return sync.ImportResult{
		Status: sync.ImportOtherFailure,
		Reason: invalidBlock{error: err, root: blk.Root()},
	}
}
