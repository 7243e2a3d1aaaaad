package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors; /metrics serves only this.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lodge",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lodge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lodge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	vouchersIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lodge",
			Subsystem: "vouchers",
			Name:      "issued_total",
			Help:      "Vouchers written to the ledger.",
		},
	)

	voucherChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lodge",
			Subsystem: "vouchers",
			Name:      "checks_total",
			Help:      "Voucher lookups by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		vouchersIssued,
		voucherChecks,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Voucher check outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeUsed     = "already_used"
	OutcomeError    = "error"
)

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// HTTPStarted marks a request in flight; call the returned func once the
// response status is known.
func HTTPStarted() func(method, route string, status int) {
	httpInFlight.Inc()
	start := time.Now()
	return func(method, route string, status int) {
		httpInFlight.Dec()
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func VoucherIssued() { vouchersIssued.Inc() }

// VoucherCheck counts a validate or redeem attempt. op is "validate" or
// "redeem".
func VoucherCheck(op, outcome string) { voucherChecks.WithLabelValues(op, outcome).Inc() }
