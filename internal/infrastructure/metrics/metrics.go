package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "parking"

// Recorder owns the service's prometheus collectors. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	sessionsOpened      *prometheus.CounterVec
	sessionsClosed      *prometheus.CounterVec
	sessionDuration     *prometheus.HistogramVec
	revenue             *prometheus.CounterVec
	allocationConflicts *prometheus.CounterVec
	ledgerFailures      prometheus.Counter
	spaceReleaseErrors  prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sessionsOpened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_opened_total",
			Help:      "Entry attempts by category and result.",
		}, []string{"category", "result"}),
		sessionsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_closed_total",
			Help:      "Closed sessions by category.",
		}, []string{"category"}),
		sessionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_hours",
			Help:      "Length of closed sessions in hours.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 12, 24, 48},
		}, []string{"category"}),
		revenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Billed amount of closed sessions in minor currency units.",
		}, []string{"category"}),
		allocationConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocation_conflicts_total",
			Help:      "Space allocations lost to a concurrent writer.",
		}, []string{"category"}),
		ledgerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_append_failures_total",
			Help:      "Customer ledger appends that failed after a session was closed.",
		}),
		spaceReleaseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_release_failures_total",
			Help:      "Space releases that failed, during exit or entry compensation.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.sessionsOpened,
		r.sessionsClosed,
		r.sessionDuration,
		r.revenue,
		r.allocationConflicts,
		r.ledgerFailures,
		r.spaceReleaseErrors,
		r.httpRequests,
		r.httpDuration,
	)
	return r
}

// Registry exposes the underlying registry, mostly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) SessionOpened(category, result string) {
	if r == nil {
		return
	}
	r.sessionsOpened.WithLabelValues(category, result).Inc()
}

func (r *Recorder) SessionClosed(category string, elapsed time.Duration, cost int64) {
	if r == nil {
		return
	}
	r.sessionsClosed.WithLabelValues(category).Inc()
	r.sessionDuration.WithLabelValues(category).Observe(elapsed.Hours())
	r.revenue.WithLabelValues(category).Add(float64(cost))
}

func (r *Recorder) AllocationConflict(category string) {
	if r == nil {
		return
	}
	r.allocationConflicts.WithLabelValues(category).Inc()
}

func (r *Recorder) LedgerAppendFailed() {
	if r == nil {
		return
	}
	r.ledgerFailures.Inc()
}

func (r *Recorder) SpaceReleaseFailed() {
	if r == nil {
		return
	}
	r.spaceReleaseErrors.Inc()
}

func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
