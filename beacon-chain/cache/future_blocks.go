package cache

import (
	"sort"
	"sync"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
)

// FutureBlocks holds blocks whose slot is still ahead of the current slot,
// indexed by that slot.
type FutureBlocks struct {
	lock        sync.RWMutex
	bySlot      map[primitives.Slot]map[[32]byte]blocks.ROBlock
	slotOf      map[[32]byte]primitives.Slot
	currentSlot primitives.Slot
}

// NewFutureBlocks creates an empty future block buffer.
func NewFutureBlocks() *FutureBlocks {
	return &FutureBlocks{
		bySlot: make(map[primitives.Slot]map[[32]byte]blocks.ROBlock),
		slotOf: make(map[[32]byte]primitives.Slot),
	}
}

// Add buffers the block under its slot. It returns false if the block was
// already buffered.
func (f *FutureBlocks) Add(b blocks.ROBlock) bool {
	f.lock.Lock()
	defer f.lock.Unlock()
	if _, ok := f.slotOf[b.Root()]; ok {
		return false
	}
	atSlot, ok := f.bySlot[b.Slot()]
	if !ok {
		atSlot = make(map[[32]byte]blocks.ROBlock)
		f.bySlot[b.Slot()] = atSlot
	}
	atSlot[b.Root()] = b
	f.slotOf[b.Root()] = b.Slot()
	futureBlocksCount.Set(float64(len(f.slotOf)))
	return true
}

// Contains returns true if a block with the given root is buffered.
func (f *FutureBlocks) Contains(root [32]byte) bool {
	f.lock.RLock()
	defer f.lock.RUnlock()
	_, ok := f.slotOf[root]
	return ok
}

// Remove drops the block with the given root. It returns false if the block
// was not buffered.
func (f *FutureBlocks) Remove(root [32]byte) bool {
	f.lock.Lock()
	defer f.lock.Unlock()
	slot, ok := f.slotOf[root]
	if !ok {
		return false
	}
	delete(f.slotOf, root)
	delete(f.bySlot[slot], root)
	if len(f.bySlot[slot]) == 0 {
		delete(f.bySlot, slot)
	}
	futureBlocksCount.Set(float64(len(f.slotOf)))
	return true
}

// OnSlot records the current slot.
func (f *FutureBlocks) OnSlot(slot primitives.Slot) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if slot > f.currentSlot {
		f.currentSlot = slot
	}
}

// CurrentSlot returns the latest slot recorded by OnSlot.
func (f *FutureBlocks) CurrentSlot() primitives.Slot {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.currentSlot
}

// Prune removes and returns every buffered block with a slot lower than or
// equal to slot, ordered by slot.
func (f *FutureBlocks) Prune(slot primitives.Slot) []blocks.ROBlock {
	f.lock.Lock()
	defer f.lock.Unlock()
	var out []blocks.ROBlock
	for s, atSlot := range f.bySlot {
		if s > slot {
			continue
		}
		for root, b := range atSlot {
			out = append(out, b)
			delete(f.slotOf, root)
		}
		delete(f.bySlot, s)
	}
	sort.Sort(blocks.ROBlockSlice(out))
	futureBlocksCount.Set(float64(len(f.slotOf)))
	return out
}

// Len returns the number of buffered blocks.
func (f *FutureBlocks) Len() int {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return len(f.slotOf)
}
