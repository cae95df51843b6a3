// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelRoute, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelRoute},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business metrics
var (
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuthAttempts,
			Help: HelpTextAuthAttempts,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	InventoryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryOperations,
			Help: HelpTextInventoryOperations,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStoreUp,
			Help: HelpTextStoreUp,
		},
	)
)

// ObserveHTTP records one finished request. route is the router pattern,
// not the raw path, to keep label cardinality bounded.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordAuth counts an auth operation (signup, login, authenticate).
func RecordAuth(operation string, err error) {
	AuthAttempts.WithLabelValues(operation, Outcome(err)).Inc()
}

// RecordInventory counts an inventory operation.
func RecordInventory(operation string, err error) {
	InventoryOperations.WithLabelValues(operation, Outcome(err)).Inc()
}

// SetStoreUp publishes the result of a store ping.
func SetStoreUp(up bool) {
	if up {
		StoreUp.Set(1)
		return
	}
	StoreUp.Set(0)
}

// Outcome maps an error to its outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, common.ErrorValidation):
		return OutcomeInvalid
	case errors.Is(err, common.ErrTokenMissing),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrorUnauthorized):
		return OutcomeUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return OutcomeNotFound
	case errors.Is(err, common.ErrDuplicateEmail):
		return OutcomeConflict
	default:
		return OutcomeError
	}
}
