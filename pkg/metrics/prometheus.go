package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	computations   *prometheus.CounterVec
	remoteFailures *prometheus.CounterVec
	snapshotWrites prometheus.Counter
	latency        *prometheus.HistogramVec
	portfolioValue *prometheus.GaugeVec
}

var (
	once     sync.Once
	recorder *Recorder
)

// New returns the process-wide Prometheus metrics recorder. Collectors are
// registered on the default registry exactly once.
func New() *Recorder {
	once.Do(func() {
		recorder = newRecorder()
	})
	return recorder
}

func newRecorder() *Recorder {
	return &Recorder{
		computations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskfolio_computations_total",
				Help: "Total number of risk computations by source",
			},
			[]string{"source"},
		),
		remoteFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskfolio_remote_failures_total",
				Help: "Total number of remote risk engine failures by reason",
			},
			[]string{"reason"},
		),
		snapshotWrites: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "riskfolio_snapshot_writes_total",
				Help: "Total number of risk snapshots persisted",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskfolio_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		portfolioValue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "riskfolio_portfolio_total_value",
				Help: "Last computed total value for a portfolio",
			},
			[]string{"portfolio_id"},
		),
	}
}

// RecordComputation records a completed risk computation by source (remote or fallback).
func (r *Recorder) RecordComputation(source string) {
	r.computations.WithLabelValues(source).Inc()
}

// RecordRemoteFailure records a remote engine failure by reason.
func (r *Recorder) RecordRemoteFailure(reason string) {
	r.remoteFailures.WithLabelValues(reason).Inc()
}

// RecordSnapshotWrite records a persisted risk snapshot.
func (r *Recorder) RecordSnapshotWrite() {
	r.snapshotWrites.Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordPortfolioValue records the last computed total value for a portfolio.
func (r *Recorder) RecordPortfolioValue(portfolioID string, value float64) {
	r.portfolioValue.WithLabelValues(portfolioID).Set(value)
}
