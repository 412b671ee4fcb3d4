package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pendingBlocksCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pending_blocks_count",
		Help: "The number of blocks waiting on an unknown parent.",
	})
	futureBlocksCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "future_blocks_count",
		Help: "The number of blocks waiting for their slot.",
	})
	invalidBlockRootsCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "invalid_block_roots_count",
		Help: "The number of block roots currently registered as invalid.",
	})
	invalidBlockRootsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invalid_block_roots_evicted_total",
		Help: "The number of invalid block roots evicted to keep the registry bounded.",
	})
	pendingBlocksPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pending_blocks_pruned_total",
		Help: "The number of pending blocks dropped for being too old.",
	})
)
