package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ReservationsCreated  *prometheus.CounterVec
	ReservationsRejected prometheus.Counter
	SlotLockChanges      *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ReservationsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of created reservations by initial status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		ReservationsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_slot_conflicts_total",
			Help:        "Total number of reservation attempts rejected because the slot was taken",
			ConstLabels: constLabels,
		}),

		SlotLockChanges: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_lock_changes_total",
			Help:        "Total number of slot lock/unlock operations that changed state",
			ConstLabels: constLabels,
		}, []string{"action"}),
	}
}
