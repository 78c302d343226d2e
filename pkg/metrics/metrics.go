// Package metrics метрики Prometheus для HTTP-слоя и жизненного цикла аренды.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	reservationsTotal prometheus.Counter
	returnsTotal      prometheus.Counter
}

// New создает и регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "path"}),

		reservationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "rental_reservations_total",
			Help:        "Total number of successful vehicle reservations",
			ConstLabels: labels,
		}),

		returnsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "rental_returns_total",
			Help:        "Total number of successful booking returns",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncReservations фиксирует успешное бронирование
func (m *Metrics) IncReservations() {
	m.reservationsTotal.Inc()
}

// IncReturns фиксирует успешный возврат
func (m *Metrics) IncReturns() {
	m.returnsTotal.Inc()
}
