package blockchain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importedBlocks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_blocks_imported_total",
		Help: "Count of blocks saved to the chain.",
	})
	headSlot = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "beacon_head_slot",
		Help: "Slot of the highest imported block.",
	})
)
