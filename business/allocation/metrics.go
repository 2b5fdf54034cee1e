package allocation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	allocationRoundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "namelab_allocation_rounds_total",
			Help: "Count of next-round allocations computed.",
		},
	)

	posteriorUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "namelab_posterior_updates_total",
			Help: "Count of posterior updates by pattern.",
		},
		[]string{"pattern"},
	)
)

func init() {
	prometheus.MustRegister(allocationRoundsTotal, posteriorUpdatesTotal)
}
