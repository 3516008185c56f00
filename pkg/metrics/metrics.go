package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     prometheus.Gauge
	DBInUseConns    prometheus.Gauge
	DBIdleConns     prometheus.Gauge

	BookingsTotal    *prometheus.CounterVec
	RejectionsTotal  *prometheus.CounterVec
	CatalogFallbacks prometheus.Counter
	CatalogReloads   *prometheus.CounterVec
}

// New регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: labels,
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: labels,
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: labels,
		}),
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by kind and outcome",
			ConstLabels: labels,
		}, []string{"kind", "outcome"}),
		RejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_rejections_total",
			Help:        "Rejected booking attempts by rejection kind",
			ConstLabels: labels,
		}, []string{"reason"}),
		CatalogFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "tariff_catalog_fallbacks_total",
			Help:        "Tariff catalog refreshes that fell back to the cached table",
			ConstLabels: labels,
		}),
		CatalogReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "tariff_catalog_reloads_total",
			Help:        "Tariff catalog loads from the store",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConns,
		m.DBInUseConns,
		m.DBIdleConns,
		m.BookingsTotal,
		m.RejectionsTotal,
		m.CatalogFallbacks,
		m.CatalogReloads,
	)

	return m
}

// ObserveBooking учитывает попытку бронирования
// reason пустой для успешных бронирований
func (m *Metrics) ObserveBooking(kind, reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		m.BookingsTotal.WithLabelValues(kind, "committed").Inc()
		return
	}
	m.BookingsTotal.WithLabelValues(kind, "rejected").Inc()
	m.RejectionsTotal.WithLabelValues(reason).Inc()
}

// ObserveCatalogLoad учитывает загрузку таблицы тарифов
func (m *Metrics) ObserveCatalogLoad(err error, fallback bool) {
	if m == nil {
		return
	}
	if err == nil {
		m.CatalogReloads.WithLabelValues("ok").Inc()
		return
	}
	m.CatalogReloads.WithLabelValues("error").Inc()
	if fallback {
		m.CatalogFallbacks.Inc()
	}
}
