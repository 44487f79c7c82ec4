package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SignupsTotal        prometheus.Counter
	LoginsTotal         prometheus.Counter
	LawyersCreatedTotal prometheus.Counter
	FallbackActive      prometheus.Gauge
	RequestDuration     *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return newWith(prometheus.DefaultRegisterer)
}

// NewForTesting registers against a private registry so parallel test
// packages do not collide on the default one.
func NewForTesting() *Metrics {
	return newWith(prometheus.NewRegistry())
}

func newWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignupsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawpoint_signups_total",
			Help: "Total number of accounts created",
		}),
		LoginsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawpoint_logins_total",
			Help: "Total number of successful logins",
		}),
		LawyersCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawpoint_lawyers_created_total",
			Help: "Total number of lawyer entries added to the roster",
		}),
		FallbackActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lawpoint_fallback_active",
			Help: "1 when requests are served from the in-memory fallback store",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lawpoint_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// SetFallbackActive reflects the connectivity flag into the gauge.
func (m *Metrics) SetFallbackActive(active bool) {
	if active {
		m.FallbackActive.Set(1)
		return
	}
	m.FallbackActive.Set(0)
}
