package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Recorder interface {
	IncConversions(language string, result string)
	ObserveConversionDuration(language string, duration time.Duration)
	SetStreamSubscribers(language string, count int)
	Handler() http.Handler
}

const (
	ResultOK    = "ok"
	ResultError = "error"
)

type PrometheusRecorder struct {
	registry           *prometheus.Registry
	conversionsTotal   *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec
	streamSubscribers  *prometheus.GaugeVec
}

func (m *PrometheusRecorder) IncConversions(language string, result string) {
	m.conversionsTotal.WithLabelValues(language, result).Inc()
}

func (m *PrometheusRecorder) ObserveConversionDuration(language string, duration time.Duration) {
	m.conversionDuration.WithLabelValues(language).Observe(duration.Seconds())
}

func (m *PrometheusRecorder) SetStreamSubscribers(language string, count int) {
	m.streamSubscribers.WithLabelValues(language).Set(float64(count))
}

// Handler exposes the recorder's own registry plus Go runtime collectors.
func (m *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the recorder's own registry.
func (m *PrometheusRecorder) Registry() *prometheus.Registry {
	return m.registry
}

// NewRecorder returns a Prometheus-backed recorder, or a no-op one when
// enabled is false.
func NewRecorder(enabled bool) Recorder {
	if !enabled {
		return &noopRecorder{}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		registry: reg,
		conversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rona_calendar_conversions_total",
			Help: "Total number of clock conversions",
		}, []string{"language", "result"}),

		conversionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rona_calendar_conversion_duration_seconds",
			Help:    "Clock conversion duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005},
		}, []string{"language"}),

		streamSubscribers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rona_calendar_stream_subscribers",
			Help: "Current number of clock stream subscribers per language",
		}, []string{"language"}),
	}
}

// noopRecorder is used when metrics are disabled.
type noopRecorder struct{}

func (n *noopRecorder) IncConversions(_ string, _ string)                   {}
func (n *noopRecorder) ObserveConversionDuration(_ string, _ time.Duration) {}
func (n *noopRecorder) SetStreamSubscribers(_ string, _ int)                {}
func (n *noopRecorder) Handler() http.Handler                               { return http.NotFoundHandler() }
