package sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockImportOutcome = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "block_import_outcome_total",
			Help: "Count of block import attempts by outcome.",
		},
		[]string{"outcome"},
	)
	blocksRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blocks_rejected_total",
			Help: "Count of block roots registered as invalid, dependents included.",
		},
	)
	duplicateBlocks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "duplicate_blocks_total",
			Help: "Count of arrived blocks that were already known.",
		},
	)
	gossipReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gossip_message_received_total",
			Help: "Count of gossip messages received by kind.",
		},
		[]string{"kind"},
	)
	parentRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parent_block_requests_total",
			Help: "Count of requests sent for unknown parent blocks.",
		},
	)
	droppedImportNotifications = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "import_notifications_dropped_total",
			Help: "Count of import notifications dropped because a subscriber was not ready.",
		},
	)
)
