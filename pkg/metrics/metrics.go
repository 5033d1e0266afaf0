// Package metrics holds the Prometheus collectors of the feature pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline groups the collectors recorded while extracting features
type Pipeline struct {
	GamesProcessed     prometheus.Counter
	ActionsProcessed   prometheus.Counter
	ExtractionFailures *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram
	FeatureColumns     prometheus.Gauge
}

// NewPipeline creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is what tests want.
func NewPipeline(reg prometheus.Registerer) *Pipeline {
	p := &Pipeline{
		GamesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "socceraction",
			Subsystem: "features",
			Name:      "games_processed_total",
			Help:      "Total number of games whose feature matrix was computed.",
		}),
		ActionsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "socceraction",
			Subsystem: "features",
			Name:      "actions_processed_total",
			Help:      "Total number of feature rows produced.",
		}),
		ExtractionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "socceraction",
			Subsystem: "features",
			Name:      "extraction_failures_total",
			Help:      "Total number of failed extractions, labelled by stage.",
		}, []string{"stage"}),
		ExtractionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "socceraction",
			Subsystem: "features",
			Name:      "extraction_duration_seconds",
			Help:      "Time to compute the feature matrix of one game.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		FeatureColumns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "socceraction",
			Subsystem: "features",
			Name:      "columns",
			Help:      "Number of columns in the configured feature matrix.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			p.GamesProcessed,
			p.ActionsProcessed,
			p.ExtractionFailures,
			p.ExtractionDuration,
			p.FeatureColumns,
		)
	}
	return p
}
