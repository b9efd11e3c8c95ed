package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Posting metrics
	TransactionsPosted prometheus.Counter
	PostingErrors      *prometheus.CounterVec
	PostingDuration    prometheus.Histogram

	// Balance metrics
	Recalculations        prometheus.Counter
	RecalculationDuration prometheus.Histogram

	// Account metrics
	AccountsCreated prometheus.Counter

	// Business metrics
	BusinessesRegistered prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge
}

// New creates all metrics registered against reg. Passing a fresh registry
// keeps parallel tests from colliding on duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransactionsPosted: factory.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_transactions_posted_total",
			Help: "Total number of transactions posted",
		}),
		PostingErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openbooks_posting_errors_total",
				Help: "Total number of rejected or failed posts by class",
			},
			[]string{"class"},
		),
		PostingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "openbooks_posting_duration_seconds",
			Help:    "Duration of posting operations",
			Buckets: prometheus.DefBuckets,
		}),

		Recalculations: factory.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_balance_recalculations_total",
			Help: "Total number of balance recalculations",
		}),
		RecalculationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "openbooks_balance_recalculation_duration_seconds",
			Help:    "Duration of balance recalculations",
			Buckets: prometheus.DefBuckets,
		}),

		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		BusinessesRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_businesses_registered_total",
			Help: "Total number of businesses registered",
		}),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openbooks_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "openbooks_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "openbooks_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),
	}
}
