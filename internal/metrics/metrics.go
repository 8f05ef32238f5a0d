// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts request outcomes, failed authentications and todo
// operations.
type Collector struct {
	httpRequests *prometheus.CounterVec
	authFailures prometheus.Counter
	todoOps      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gotodo_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status_code"}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gotodo_auth_failures_total",
			Help: "Requests rejected by the bearer token gate.",
		}),
		todoOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gotodo_todo_operations_total",
			Help: "Successful todo operations by kind.",
		}, []string{"operation"}),
	}

	reg.MustRegister(c.httpRequests, c.authFailures, c.todoOps)

	return c
}

func (c *Collector) RecordHTTPRequest(method string, statusCode int) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordAuthFailure() {
	c.authFailures.Inc()
}

func (c *Collector) RecordTodoOp(operation string) {
	c.todoOps.WithLabelValues(operation).Inc()
}

// Handler exposes the registry for scraping.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
