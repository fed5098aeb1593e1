package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder_WhenDisabled(t *testing.T) {
	m := NewRecorder(false)
	_, ok := m.(*noopRecorder)
	assert.True(t, ok, "should return noopRecorder when disabled")

	m.IncConversions("am", ResultOK)
	m.ObserveConversionDuration("am", time.Millisecond)
	m.SetStreamSubscribers("am", 3)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrometheusRecorder_Counts(t *testing.T) {
	m, ok := NewRecorder(true).(*PrometheusRecorder)
	require.True(t, ok)

	m.IncConversions("am", ResultOK)
	m.IncConversions("am", ResultOK)
	m.IncConversions("en", ResultError)
	m.SetStreamSubscribers("am", 4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.conversionsTotal.WithLabelValues("am", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversionsTotal.WithLabelValues("en", ResultError)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.streamSubscribers.WithLabelValues("am")))

	series, err := testutil.GatherAndCount(m.Registry(), "rona_calendar_conversions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	m := NewRecorder(true)
	m.IncConversions("en", ResultOK)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rona_calendar_conversions_total")
}

func TestPrometheusRecorder_Independent(t *testing.T) {
	// Each recorder owns its registry, so building two must not panic.
	assert.NotPanics(t, func() {
		NewRecorder(true)
		NewRecorder(true)
	})
}
