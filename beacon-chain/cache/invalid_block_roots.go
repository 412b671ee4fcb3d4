package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

// InvalidBlockRoots is a bounded set of block roots known to be invalid. Once
// full, inserting a new root evicts the oldest inserted one. Lookups never
// refresh an entry, so eviction follows insertion order.
type InvalidBlockRoots struct {
	cache *lru.Cache
}

// NewInvalidBlockRoots creates a registry holding at most size roots.
func NewInvalidBlockRoots(size int) (*InvalidBlockRoots, error) {
	if size <= 0 {
		return nil, ErrInvalidCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &InvalidBlockRoots{cache: c}, nil
}

// Add registers root as invalid. It reports whether an older root had to be
// evicted to make room.
func (r *InvalidBlockRoots) Add(root [32]byte) bool {
	_, evicted := r.cache.ContainsOrAdd(root, true)
	if evicted {
		invalidBlockRootsEvicted.Inc()
	}
	invalidBlockRootsCount.Set(float64(r.cache.Len()))
	return evicted
}

// Contains returns true if root is registered as invalid.
func (r *InvalidBlockRoots) Contains(root [32]byte) bool {
	return r.cache.Contains(root)
}

// Len returns the number of registered roots.
func (r *InvalidBlockRoots) Len() int {
	return r.cache.Len()
}

// Roots returns the registered roots, oldest first.
func (r *InvalidBlockRoots) Roots() [][32]byte {
	keys := r.cache.Keys()
	out := make([][32]byte, 0, len(keys))
	for _, k := range keys {
		root, ok := k.([32]byte)
		if !ok {
			continue
		}
		out = append(out, root)
	}
	return out
}
