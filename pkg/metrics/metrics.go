// Package metrics expone métricas Prometheus de la API: latencia y conteo HTTP por ruta
// y el conteo de respuestas de respaldo del generador de contenido IA.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics registro propio (no el global) para que cada instancia y cada test arranque limpio.
type Metrics struct {
	registry        *prometheus.Registry
	inFlight        prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	aiFallbacks     *prometheus.CounterVec
}

// New crea y registra los colectores. namespace prefija cada métrica (vacío = sin prefijo).
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		aiFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_generation_fallbacks_total",
			Help:      "AI generations answered with the placeholder fallback.",
		}, []string{"operation"}),
	}
	m.registry.MustRegister(
		m.inFlight, m.requestsTotal, m.requestDuration, m.aiFallbacks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry acceso al registro (tests, colectores adicionales).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Middleware mide cada request. Usa la ruta declarada (/api/inventory/:id) como label
// para no disparar la cardinalidad con IDs.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.inFlight.Inc()
		start := time.Now()
		err := c.Next()
		m.inFlight.Dec()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		labels := []string{c.Method(), route, strconv.Itoa(status)}
		m.requestsTotal.WithLabelValues(labels...).Inc()
		m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler sirve /metrics en formato de exposición Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// ObserveAIFallback cuenta una respuesta de respaldo del generador IA.
func (m *Metrics) ObserveAIFallback(operation string) {
	m.aiFallbacks.WithLabelValues(operation).Inc()
}
