package observability

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mergingtonactivities/internal/domain"
)

// Roster operations recorded by RecordRosterChange.
const (
	OperationSignup     = "signup"
	OperationUnregister = "unregister"
)

var (
	rosterChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "roster",
		Name:      "operations_total",
		Help:      "Signup and unregister attempts by outcome.",
	}, []string{"operation", "outcome"})
	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route pattern and status.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activities",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(rosterChanges, rosterSize, httpRequests, httpDuration)
}

// RecordRosterChange counts a signup or unregister attempt, labelled by the error kind.
func RecordRosterChange(operation string, err error) {
	rosterChanges.WithLabelValues(operation, Outcome(err)).Inc()
}

// SetRosterSize updates the participant gauge for one activity.
func SetRosterSize(activity string, n int) {
	rosterSize.WithLabelValues(activity).Set(float64(n))
}

// RecordHTTPRequest records one served request. An empty route is reported as "unmatched".
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Outcome maps an operation error to a stable metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, domain.ErrNotSignedUp):
		return "not_signed_up"
	case errors.Is(err, domain.ErrActivityFull):
		return "full"
	default:
		return "error"
	}
}
