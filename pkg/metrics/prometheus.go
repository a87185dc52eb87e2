package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the scheduling service.
type Metrics struct {
	ItinerariesGenerated prometheus.Counter
	DaysReordered        prometheus.Counter
	GenerationTime       prometheus.Histogram
	ErrorsCount          *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ItinerariesGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itineraries_generated_total",
			Help:      "The total number of itineraries generated",
		}),
		DaysReordered: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "days_reordered_total",
			Help:      "The total number of day reorder requests",
		}),
		GenerationTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "itinerary_generation_time_seconds",
			Help:      "Time taken to generate an itinerary",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
