package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the allocation HTTP handler
	AllocationLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "namelab_allocation_latency_seconds",
		Help:    "Latency of the next-round allocation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of scored candidates served
	ScoredCandidatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "namelab_scored_candidates_total",
		Help: "Total number of candidates scored by the shadow model",
	})

	ReplayedEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "namelab_replayed_events_total",
		Help: "Sidecar events replayed, by validity.",
	}, []string{"validity"})
)

func Init() {
	prometheus.MustRegister(
		AllocationLatency,
		ScoredCandidatesTotal,
		ReplayedEventsTotal,
	)
}
