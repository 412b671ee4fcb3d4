package sync

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

func blockFields(blk blocks.ROBlock) logrus.Fields {
	root := blk.Root()
	parent := blk.ParentRoot()
	return logrus.Fields{
		"slot":       blk.Slot(),
		"blockRoot":  fmt.Sprintf("%#x", root[:8]),
		"parentRoot": fmt.Sprintf("%#x", parent[:8]),
	}
}

// known reports whether the block is in the chain, held by a pool or being
// imported.
func (s *Service) known(ctx context.Context, root [32]byte) bool {
	return s.inFlight[root] ||
		s.pending.Contains(root) ||
		s.future.Contains(root) ||
		s.cfg.Chain.HasBlock(ctx, root)
}

func (s *Service) onBlockArrived(ctx context.Context, blk blocks.ROBlock) {
	_, span := trace.StartSpan(ctx, "sync.processBlock")
	defer span.End()
	root := blk.Root()
	span.AddAttributes(
		trace.Int64Attribute("slot", int64(blk.Slot())),
		trace.StringAttribute("blockRoot", fmt.Sprintf("%#x", root)),
	)

	s.fetches.Remove(root)
	if s.cfg.Fetcher != nil {
		s.cfg.Fetcher.CancelRequest(root)
	}

	if s.known(s.ctx, root) {
		duplicateBlocks.Inc()
		log.WithFields(blockFields(blk)).Debug("Ignoring known block")
		return
	}
	if s.invalid.Contains(root) {
		s.reject(blk, errInvalidBlockRoot)
		return
	}
	if s.invalid.Contains(blk.ParentRoot()) {
		s.reject(blk, errInvalidAncestor)
		return
	}

	s.inFlight[root] = true
	s.workers.Add(1)
	go func() {
		defer s.workers.Done()
		res := s.importBlock(trace.NewContext(s.ctx, span), blk)
		if err := s.post(s.ctx, importResultEvent{blk: blk, result: res}); err != nil {
			log.WithFields(blockFields(blk)).WithError(err).Debug("Dropped import result")
		}
	}()
}

func (s *Service) importBlock(ctx context.Context, blk blocks.ROBlock) (res ImportResult) {
	defer func() {
		if r := recover(); r != nil {
			res = ImportResult{Status: ImportOtherFailure, Reason: errors.Errorf("oracle panicked: %v", r)}
		}
	}()
	return s.cfg.Oracle.ImportBlock(ctx, blk)
}

func (s *Service) onImportResult(blk blocks.ROBlock, res ImportResult) {
	root := blk.Root()
	delete(s.inFlight, root)
	blockImportOutcome.WithLabelValues(res.Status.String()).Inc()

	switch res.Status {
	case ImportSuccess:
		log.WithFields(blockFields(blk)).Debug("Imported block")
		s.onImportCompleted(blk)
	case ImportUnknownParent:
		s.onUnknownParent(blk)
	case ImportFutureSlot:
		if s.future.Add(blk) {
			log.WithFields(blockFields(blk)).Debug("Buffered block from a future slot")
		}
	default:
		reason := res.Reason
		if reason == nil {
			reason = errors.New("block import failed")
		}
		s.reject(blk, reason)
	}
}

func (s *Service) onUnknownParent(blk blocks.ROBlock) {
	fields := blockFields(blk)
	if !s.pending.Add(blk) {
		log.WithFields(fields).Debug("Dropping block with unknown parent outside of the pending window")
		return
	}
	// The parent may have been imported while this block was with the oracle.
	if s.cfg.Chain.HasBlock(s.ctx, blk.ParentRoot()) {
		s.pending.Remove(blk.Root())
		s.onBlockArrived(s.ctx, blk)
		return
	}
	log.WithFields(fields).Debug("Holding block until its parent is imported")
	s.requestParent(blk.ParentRoot())
}

func (s *Service) requestParent(parent [32]byte) {
	if s.cfg.Fetcher == nil || s.pending.Contains(parent) || s.future.Contains(parent) || s.inFlight[parent] {
		return
	}
	if !s.fetches.Add(parent) {
		return
	}
	parentRequests.Inc()
	if err := s.cfg.Fetcher.RequestBlock(s.ctx, parent); err != nil {
		s.fetches.Remove(parent)
		log.WithError(err).WithField("blockRoot", fmt.Sprintf("%#x", parent[:8])).Debug("Could not request parent block")
	}
}

// onImportCompleted releases the pending children of an imported block.
func (s *Service) onImportCompleted(blk blocks.ROBlock) {
	root := blk.Root()
	s.pending.Remove(root)
	s.future.Remove(root)
	s.publish(blk)
	for _, child := range s.pending.RemoveChildren(root) {
		s.onBlockArrived(s.ctx, child)
	}
}

// reject registers the block and every pending block built on it as invalid.
func (s *Service) reject(blk blocks.ROBlock, reason error) {
	removed := s.pending.RemoveWithDependents(blk.Root())
	for _, r := range removed {
		s.invalid.Add(r)
	}
	blocksRejected.Add(float64(len(removed)))
	log.WithFields(blockFields(blk)).WithFields(logrus.Fields{
		"reason":     reason.Error(),
		"dependents": len(removed) - 1,
	}).Warn("Rejected invalid block")
}

func (s *Service) onSlotTick(slot primitives.Slot) {
	if pruned := s.pending.OnSlot(slot); len(pruned) > 0 {
		log.WithFields(logrus.Fields{
			"slot":   slot,
			"pruned": len(pruned),
		}).Debug("Pruned stale pending blocks")
	}
	s.future.OnSlot(slot)
	for _, blk := range s.future.Prune(slot) {
		s.onBlockArrived(s.ctx, blk)
	}
}
