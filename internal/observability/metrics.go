package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a ranking run.
type Metrics struct {
	Registry *prometheus.Registry

	CitiesLoaded      prometheus.Counter
	CitiesComfortable prometheus.Counter
	CitiesRanked      prometheus.Counter
	RunFailures       *prometheus.CounterVec // labels: stage={extract,rank,load}
	RunDuration       prometheus.Histogram
	LastSuccess       prometheus.Gauge
	RankingsPublished *prometheus.CounterVec // labels: sink
}

// NewMetrics creates all ranking metrics and registers them with a dedicated
// registry, which is what gets pushed to the Pushgateway.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CitiesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "livable",
			Name:      "cities_loaded_total",
			Help:      "Total city records read from the dataset.",
		}),
		CitiesComfortable: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "livable",
			Name:      "cities_comfortable_total",
			Help:      "Total cities that passed the comfort filter.",
		}),
		CitiesRanked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "livable",
			Name:      "cities_ranked_total",
			Help:      "Total cities emitted in rankings.",
		}),
		RunFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "livable",
			Name:      "run_failures_total",
			Help:      "Ranking runs that failed, by stage.",
		}, []string{"stage"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "livable",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete extract-rank-load run.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "livable",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful ranking run.",
		}),
		RankingsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "livable",
			Name:      "rankings_published_total",
			Help:      "Rankings delivered, by sink.",
		}, []string{"sink"}),
	}

	m.Registry.MustRegister(
		m.CitiesLoaded,
		m.CitiesComfortable,
		m.CitiesRanked,
		m.RunFailures,
		m.RunDuration,
		m.LastSuccess,
		m.RankingsPublished,
	)

	return m
}
