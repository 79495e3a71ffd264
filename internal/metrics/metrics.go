// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
)

// Rejection reasons used as the "reason" label.
const (
	ReasonInvalidArgument   = "invalid_argument"
	ReasonCityMismatch      = "city_mismatch"
	ReasonNoAvailableDriver = "no_available_driver"
	ReasonNotFound          = "not_found"
	ReasonInternal          = "internal"
)

// Assignment counts assignment outcomes. It is a commands.AssignmentObserver.
type Assignment struct {
	assigned prometheus.Counter
	rejected *prometheus.CounterVec
	distance prometheus.Histogram
}

// NewAssignment creates the collectors and registers them with reg.
func NewAssignment(reg prometheus.Registerer) (*Assignment, error) {
	m := &Assignment{
		assigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deliveries_assigned_total",
			Help: "Total number of deliveries created with an assigned driver",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "delivery_assignments_rejected_total",
			Help: "Total number of assignment requests that created no delivery",
		}, []string{"reason"}),
		distance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "delivery_distance_km",
			Help:    "Distance of assigned deliveries in kilometres",
			Buckets: prometheus.LinearBuckets(2, 2, 9),
		}),
	}

	for _, c := range []prometheus.Collector{m.assigned, m.rejected, m.distance} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Assignment) DeliveryAssigned(_ context.Context, d *delivery.Delivery) {
	m.assigned.Inc()
	m.distance.Observe(d.Distance().Kilometers())
}

func (m *Assignment) AssignmentRejected(_ context.Context, err error) {
	m.rejected.WithLabelValues(Reason(err)).Inc()
}

// Assigned exposes the success counter for tests and dashboards.
func (m *Assignment) Assigned() prometheus.Counter { return m.assigned }

// Rejected returns the rejection counter for reason.
func (m *Assignment) Rejected(reason string) prometheus.Counter {
	return m.rejected.WithLabelValues(reason)
}

// Reason classifies an assignment error.
func Reason(err error) string {
	switch {
	case errors.Is(err, commands.ErrInvalidArgument):
		return ReasonInvalidArgument
	case errors.Is(err, services.ErrCityMismatch):
		return ReasonCityMismatch
	case errors.Is(err, services.ErrNoAvailableDriver):
		return ReasonNoAvailableDriver
	case errors.Is(err, errs.ErrObjectNotFound):
		return ReasonNotFound
	default:
		return ReasonInternal
	}
}

// HTTP records request counts and latencies per route.
type HTTP struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTP creates the collectors and registers them with reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	m := &HTTP{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one request. path must be the route pattern, not the raw
// URL, to keep label cardinality bounded.
func (m *HTTP) Observe(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.requests.WithLabelValues(method, path, code).Inc()
	m.duration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// Requests returns the request counter for one label set.
func (m *HTTP) Requests(method, path string, status int) prometheus.Counter {
	return m.requests.WithLabelValues(method, path, strconv.Itoa(status))
}
