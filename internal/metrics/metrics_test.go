package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New("test")

	m.ObserveRequest(http.MethodGet, "/restaurants", http.StatusOK, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/restaurants", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodDelete, "/restaurants/:id", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/restaurants", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("DELETE", "/restaurants/:id", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpRequestDuration))
}

func TestDomainCounters(t *testing.T) {
	m := New("")

	m.RestaurantPizzaCreated()
	m.RestaurantPizzaCreated()
	m.RestaurantDeleted()
	m.ValidationFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.restaurantPizzasCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.restaurantsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New("test")
	m.RestaurantDeleted()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "test_restaurants_deleted_total 1")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.RestaurantPizzaCreated()
		m.RestaurantDeleted()
		m.ValidationFailed()
	})
	assert.Nil(t, m.Registry())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
