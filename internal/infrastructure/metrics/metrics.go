// Package metrics expone las métricas Prometheus del servicio: tráfico HTTP,
// eventos de negocio y estado del pool de conexiones.
package metrics

import (
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

const namespace = "biztime"

var _ usecase.EventRecorder = (*Metrics)(nil)

// Metrics agrupa los colectores registrados en Registry.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	EntitiesCreated *prometheus.CounterVec
	EntitiesDeleted *prometheus.CounterVec
	PaymentChanges  *prometheus.CounterVec
}

// New crea un registro propio con los colectores de proceso y Go más los del servicio.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP por método, ruta y status",
		}, []string{"method", "route", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		EntitiesCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Entidades creadas por tipo",
		}, []string{"entity"}),
		EntitiesDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_deleted_total",
			Help:      "Entidades eliminadas por tipo",
		}, []string{"entity"}),
		PaymentChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_payment_changes_total",
			Help:      "Cambios de estado de pago de facturas",
		}, []string{"paid"}),
	}
}

// ObserveRequest registra una petición terminada. route es el patrón, no la URL.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// EntityCreated implementa usecase.EventRecorder.
func (m *Metrics) EntityCreated(entity string) { m.EntitiesCreated.WithLabelValues(entity).Inc() }

// EntityDeleted implementa usecase.EventRecorder.
func (m *Metrics) EntityDeleted(entity string) { m.EntitiesDeleted.WithLabelValues(entity).Inc() }

// InvoicePaymentChanged implementa usecase.EventRecorder.
func (m *Metrics) InvoicePaymentChanged(paid bool) {
	m.PaymentChanges.WithLabelValues(strconv.FormatBool(paid)).Inc()
}

// RegisterPool publica el estado del pool como gauges leídos en cada scrape.
func (m *Metrics) RegisterPool(pool *pgxpool.Pool) {
	gauge := func(name, help string, value func(*pgxpool.Stat) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 { return value(pool.Stat()) })
	}
	m.Registry.MustRegister(
		gauge("total_conns", "Conexiones abiertas", func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) }),
		gauge("acquired_conns", "Conexiones en uso", func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) }),
		gauge("idle_conns", "Conexiones ociosas", func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) }),
		gauge("max_conns", "Máximo de conexiones", func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) }),
	)
}
