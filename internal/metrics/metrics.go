package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the collectors exposed on /metrics. Every instance has its own
// registry so tests never share counters.
type Metrics struct {
	registry *prometheus.Registry

	RequestCount     *prometheus.CounterVec
	RequestLatency   *prometheus.HistogramVec
	ChatMessages     *prometheus.CounterVec
	GenerationErrors prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestCount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests.",
		}, []string{"method", "endpoint", "status"}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		ChatMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total chat questions received, by topic.",
		}, []string{"topic"}),
		GenerationErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "gemini_errors_total",
			Help: "Total failed Gemini generations.",
		}),
	}
}

func (m *Metrics) ObserveQuestion(topic string) {
	m.ChatMessages.WithLabelValues(topic).Inc()
}

func (m *Metrics) IncGenerationError() {
	m.GenerationErrors.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
