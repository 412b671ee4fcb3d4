package cache

import (
	"sort"
	"sync"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
)

// PendingBlocks holds blocks whose parent is not known yet, indexed by their
// own root and by their parent root.
type PendingBlocks struct {
	lock                sync.RWMutex
	byRoot              map[[32]byte]blocks.ROBlock
	byParent            map[[32]byte]map[[32]byte]bool
	currentSlot         primitives.Slot
	slotKnown           bool
	historicalTolerance primitives.Slot
	futureTolerance     primitives.Slot
}

// NewPendingBlocks creates a pending pool. Blocks more than historicalTolerance
// slots behind the current slot are pruned on every slot, and blocks more than
// futureTolerance slots ahead of it are not accepted. A zero tolerance disables
// the corresponding bound. The future bound applies once OnSlot has been
// called.
func NewPendingBlocks(historicalTolerance, futureTolerance primitives.Slot) *PendingBlocks {
	return &PendingBlocks{
		byRoot:              make(map[[32]byte]blocks.ROBlock),
		byParent:            make(map[[32]byte]map[[32]byte]bool),
		historicalTolerance: historicalTolerance,
		futureTolerance:     futureTolerance,
	}
}

// Add inserts the block keyed by its parent root. It returns false when the
// block was already present or lies outside the accepted slot window.
func (p *PendingBlocks) Add(b blocks.ROBlock) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if _, ok := p.byRoot[b.Root()]; ok {
		return false
	}
	if p.outsideWindow(b.Slot()) {
		return false
	}
	p.byRoot[b.Root()] = b
	children, ok := p.byParent[b.ParentRoot()]
	if !ok {
		children = make(map[[32]byte]bool)
		p.byParent[b.ParentRoot()] = children
	}
	children[b.Root()] = true
	pendingBlocksCount.Set(float64(len(p.byRoot)))
	return true
}

func (p *PendingBlocks) outsideWindow(slot primitives.Slot) bool {
	if p.slotKnown && p.futureTolerance > 0 && slot > p.currentSlot+p.futureTolerance {
		return true
	}
	if p.historicalTolerance > 0 && slot+p.historicalTolerance < p.currentSlot {
		return true
	}
	return false
}

// Contains returns true if a block with the given root is pending.
func (p *PendingBlocks) Contains(root [32]byte) bool {
	p.lock.RLock()
	defer p.lock.RUnlock()
	_, ok := p.byRoot[root]
	return ok
}

// Remove drops the block with the given root, returning it if it was pending.
func (p *PendingBlocks) Remove(root [32]byte) (blocks.ROBlock, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	b, ok := p.byRoot[root]
	if !ok {
		return blocks.ROBlock{}, false
	}
	p.remove(b)
	pendingBlocksCount.Set(float64(len(p.byRoot)))
	return b, true
}

func (p *PendingBlocks) remove(b blocks.ROBlock) {
	delete(p.byRoot, b.Root())
	if children, ok := p.byParent[b.ParentRoot()]; ok {
		delete(children, b.Root())
		if len(children) == 0 {
			delete(p.byParent, b.ParentRoot())
		}
	}
}

// Children returns the pending blocks whose parent is root, ordered by slot.
func (p *PendingBlocks) Children(root [32]byte) []blocks.ROBlock {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.children(root)
}

func (p *PendingBlocks) children(root [32]byte) []blocks.ROBlock {
	children := p.byParent[root]
	if len(children) == 0 {
		return nil
	}
	out := make([]blocks.ROBlock, 0, len(children))
	for r := range children {
		out = append(out, p.byRoot[r])
	}
	sort.Sort(blocks.ROBlockSlice(out))
	return out
}

// RemoveChildren drops and returns the pending blocks whose parent is root.
func (p *PendingBlocks) RemoveChildren(root [32]byte) []blocks.ROBlock {
	p.lock.Lock()
	defer p.lock.Unlock()
	out := p.children(root)
	for _, b := range out {
		p.remove(b)
	}
	pendingBlocksCount.Set(float64(len(p.byRoot)))
	return out
}

// Dependents returns every pending block that descends from root, directly or
// through other pending blocks, in breadth first order.
func (p *PendingBlocks) Dependents(root [32]byte) []blocks.ROBlock {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.dependents(root)
}

func (p *PendingBlocks) dependents(root [32]byte) []blocks.ROBlock {
	var out []blocks.ROBlock
	visited := map[[32]byte]bool{root: true}
	queue := [][32]byte{root}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, child := range p.children(next) {
			if visited[child.Root()] {
				continue
			}
			visited[child.Root()] = true
			out = append(out, child)
			queue = append(queue, child.Root())
		}
	}
	return out
}

// RemoveWithDependents drops the block with the given root, if pending, along
// with every pending descendant. It returns the roots removed, root included
// whether or not it was pending.
func (p *PendingBlocks) RemoveWithDependents(root [32]byte) [][32]byte {
	p.lock.Lock()
	defer p.lock.Unlock()
	deps := p.dependents(root)
	removed := make([][32]byte, 0, len(deps)+1)
	removed = append(removed, root)
	if b, ok := p.byRoot[root]; ok {
		p.remove(b)
	}
	for _, d := range deps {
		p.remove(d)
		removed = append(removed, d.Root())
	}
	pendingBlocksCount.Set(float64(len(p.byRoot)))
	return removed
}

// OnSlot records the current slot and prunes blocks that fell behind the
// historical tolerance. It returns the pruned blocks.
func (p *PendingBlocks) OnSlot(slot primitives.Slot) []blocks.ROBlock {
	p.lock.Lock()
	defer p.lock.Unlock()
	if slot > p.currentSlot {
		p.currentSlot = slot
	}
	p.slotKnown = true
	if p.historicalTolerance == 0 {
		return nil
	}
	var pruned []blocks.ROBlock
	for _, b := range p.byRoot {
		if b.Slot()+p.historicalTolerance < p.currentSlot {
			pruned = append(pruned, b)
		}
	}
	for _, b := range pruned {
		p.remove(b)
	}
	sort.Sort(blocks.ROBlockSlice(pruned))
	pendingBlocksPruned.Add(float64(len(pruned)))
	pendingBlocksCount.Set(float64(len(p.byRoot)))
	return pruned
}

// Len returns the number of pending blocks.
func (p *PendingBlocks) Len() int {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return len(p.byRoot)
}
