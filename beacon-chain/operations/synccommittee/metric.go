package synccommittee

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	savedSyncContributionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_contributions_saved_total",
		Help: "The number of saved sync committee contributions and messages.",
	}, []string{"kind"})
	selectedSyncAggregateTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_aggregate_selected_total",
		Help: "The number of contributions selected into sync aggregates.",
	})
	contributionDecodeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_contributions_decode_failures_total",
		Help: "The number of stored contribution lists that could not be decoded.",
	})
	prunedContributionSlotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_contribution_slots_pruned_total",
		Help: "The number of slots whose contributions were pruned.",
	})
)
