package sync

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// RecentFetches remembers the block roots requested from the network for a
// limited time, so that the same root is not requested again while the first
// request may still be answered.
type RecentFetches struct {
	cache *gocache.Cache
}

// NewRecentFetches creates a set whose entries expire after ttl.
func NewRecentFetches(ttl time.Duration) *RecentFetches {
	return &RecentFetches{cache: gocache.New(ttl, 2*ttl)}
}

// Add records root as requested. It returns false if a request for root is
// already outstanding.
func (r *RecentFetches) Add(root [32]byte) bool {
	return r.cache.Add(string(root[:]), true, gocache.DefaultExpiration) == nil
}

// Contains returns true if root was requested and the request has not expired.
func (r *RecentFetches) Contains(root [32]byte) bool {
	_, ok := r.cache.Get(string(root[:]))
	return ok
}

// Remove forgets root. It returns true if a request was outstanding.
func (r *RecentFetches) Remove(root [32]byte) bool {
	ok := r.Contains(root)
	r.cache.Delete(string(root[:]))
	return ok
}

// Len returns the number of recorded requests. Expired entries count until
// the janitor removes them.
func (r *RecentFetches) Len() int {
	return r.cache.ItemCount()
}
