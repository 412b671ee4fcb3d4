package sync

import (
	"context"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
)

// event is consumed by the service's run loop. Every implementation is
// declared in this file.
type event interface {
	isEvent()
}

type blockArrivedEvent struct {
	ctx context.Context
	blk blocks.ROBlock
}

type slotTickEvent struct {
	slot primitives.Slot
}

type importCompletedEvent struct {
	blk blocks.ROBlock
}

type importResultEvent struct {
	blk    blocks.ROBlock
	result ImportResult
}

func (blockArrivedEvent) isEvent()    {}
func (slotTickEvent) isEvent()        {}
func (importCompletedEvent) isEvent() {}
func (importResultEvent) isEvent()    {}
