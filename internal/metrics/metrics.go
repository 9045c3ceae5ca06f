// Package metrics exposes Prometheus metrics for the restaurant pizzas API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "restaurant_pizzas"

// Metrics owns a private registry so tests and multiple servers never collide.
// All methods are safe on a nil receiver, which disables recording.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	restaurantPizzasCreated prometheus.Counter
	restaurantsDeleted      prometheus.Counter
	validationFailures      prometheus.Counter
}

// New creates and registers the API metrics under namespace.
// An empty namespace falls back to "restaurant_pizzas".
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		restaurantPizzasCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restaurant_pizzas_created_total",
			Help:      "RestaurantPizza records created.",
		}),
		restaurantsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restaurants_deleted_total",
			Help:      "Restaurants deleted together with their RestaurantPizza records.",
		}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Requests rejected with a validation error.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.restaurantPizzasCreated,
		m.restaurantsDeleted,
		m.validationFailures,
	)
	return m
}

// Registry returns the registry the metrics are registered with
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RestaurantPizzaCreated() {
	if m == nil {
		return
	}
	m.restaurantPizzasCreated.Inc()
}

func (m *Metrics) RestaurantDeleted() {
	if m == nil {
		return
	}
	m.restaurantsDeleted.Inc()
}

func (m *Metrics) ValidationFailed() {
	if m == nil {
		return
	}
	m.validationFailures.Inc()
}
