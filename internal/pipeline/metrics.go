package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what a pipeline run did, labelled by symbol.
type Metrics struct {
	barsProcessed *prometheus.CounterVec
	barsSkipped   *prometheus.CounterVec
	pivots        *prometheus.CounterVec
}

// NewMetrics creates the pipeline counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		barsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indicator_pipeline_bars_processed_total",
				Help: "the number of bars fed to the indicators",
			},
			[]string{"symbol"},
		),
		barsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indicator_pipeline_bars_skipped_total",
				Help: "the number of bars rejected by validation",
			},
			[]string{"symbol"},
		),
		pivots: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indicator_pipeline_pivots_detected_total",
				Help: "the number of pivot highs and lows detected",
			},
			[]string{"symbol", "indicator", "type"},
		),
	}

	for _, c := range []prometheus.Collector{m.barsProcessed, m.barsSkipped, m.pivots} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}
