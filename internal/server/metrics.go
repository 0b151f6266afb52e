package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/opmodel/bfhl/internal/classify"
)

// Metrics holds the Prometheus collectors exported on /metrics.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	tokensTotal      *prometheus.CounterVec
	pipelineFailures prometheus.Counter
	decodeErrors     prometheus.Counter
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bfhl_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"route", "method", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bfhl_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route"}),

		tokensTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bfhl_tokens_classified_total",
			Help: "Total number of classified tokens by category",
		}, []string{"category"}),

		pipelineFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "bfhl_pipeline_failures_total",
			Help: "Total number of requests answered with the failure result",
		}),

		decodeErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "bfhl_request_decode_errors_total",
			Help: "Total number of request bodies that could not be decoded",
		}),
	}
}

func (m *Metrics) observeRequest(route, method string, code int, d time.Duration) {
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Metrics) observeResult(res classify.Result) {
	if !res.IsSuccess {
		m.pipelineFailures.Inc()
		return
	}
	for cat, n := range res.Counts() {
		m.tokensTotal.WithLabelValues(cat.String()).Add(float64(n))
	}
}
