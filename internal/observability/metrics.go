// Package observability exposes prometheus metrics for the signup service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	withdrawalsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "withdrawals_total",
		Help:      "Number of successful withdrawals per activity.",
	}, []string{"activity"})

	rejectionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Number of rejected registry operations grouped by reason.",
	}, []string{"reason"})

	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})

	requestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests grouped by method and status code.",
	}, []string{"method", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "signup_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving HTTP requests, labeled by method.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(
		signupsCounter,
		withdrawalsCounter,
		rejectionsCounter,
		participantsGauge,
		requestsCounter,
		requestDuration,
	)
}

// Rejection reasons used as metric labels.
const (
	ReasonNotFound    = "activity_not_found"
	ReasonDuplicate   = "already_signed_up"
	ReasonNotSignedUp = "not_signed_up"
)

// RecordSignup updates counters after a successful enroll.
func RecordSignup(activity string, rosterSize int) {
	signupsCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordWithdrawal updates counters after a successful withdraw.
func RecordWithdrawal(activity string, rosterSize int) {
	withdrawalsCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordRejection counts a failed registry operation by reason.
func RecordRejection(reason string) {
	rejectionsCounter.WithLabelValues(reason).Inc()
}

// SetRosterSize seeds the participants gauge at startup.
func SetRosterSize(activity string, rosterSize int) {
	participantsGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordHTTPRequest counts a served request and observes its latency.
func RecordHTTPRequest(method string, status int, elapsed time.Duration) {
	requestsCounter.WithLabelValues(method, statusLabel(status)).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
