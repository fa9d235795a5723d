package optimizer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics tracks solve attempts and outcomes. A nil registerer leaves the
// collectors unregistered, which promauto supports; the optimizer then still
// updates them at negligible cost.
type metrics struct {
	solves   *prometheus.CounterVec
	duration prometheus.Histogram
	lastCost prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "card_optimizer_solves_total",
			Help: "Solve attempts by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "card_optimizer_solve_duration_seconds",
			Help:    "Wall-clock duration of solve runs.",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		lastCost: factory.NewGauge(prometheus.GaugeOpts{
			Name: "card_optimizer_last_total_cost",
			Help: "Grand total of the most recent successful allocation.",
		}),
	}
}

func (m *metrics) observe(outcome string, elapsed time.Duration) {
	m.solves.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}
