package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics prometheus-метрики сервиса: входящие HTTP-запросы фасада
// и исходящие запросы к бэкенду отельной системы
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	backendRequestsTotal   *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec
	backendInFlight        prometheus.Gauge
}

// New регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled by the facade",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		backendRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_requests_total",
			Help:        "Total number of outbound requests to the hotel management backend",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		backendRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Outbound backend request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		backendInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "backend_requests_in_flight",
			Help:        "Number of outbound backend requests currently in flight",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP-запрос фасада
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveBackendRequest фиксирует завершенный исходящий запрос к бэкенду
func (m *Metrics) ObserveBackendRequest(method, path, status string, seconds float64) {
	m.backendRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.backendRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// BackendInFlightInc увеличивает счетчик исходящих запросов в полете
func (m *Metrics) BackendInFlightInc() {
	m.backendInFlight.Inc()
}

// BackendInFlightDec уменьшает счетчик исходящих запросов в полете
func (m *Metrics) BackendInFlightDec() {
	m.backendInFlight.Dec()
}
