// Package metrics exposes Prometheus counters for the bot.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Update kinds used as the "kind" label.
const (
	KindCommand  = "command"
	KindMessage  = "message"
	KindCallback = "callback"
	KindOther    = "other"
)

// Metrics holds the bot's collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	updates       *prometheus.CounterVec
	billsCreated  prometheus.Counter
	handlerErrors *prometheus.CounterVec
}

// New registers the bot's collectors, plus Go and process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "splitbot_updates_total",
			Help: "Telegram updates handled, by kind.",
		}, []string{"kind"}),
		billsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "splitbot_bills_created_total",
			Help: "Bills created.",
		}),
		handlerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "splitbot_handler_errors_total",
			Help: "Unexpected errors while handling updates, by stage.",
		}, []string{"stage"}),
	}

	reg.MustRegister(
		m.updates,
		m.billsCreated,
		m.handlerErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Update counts a handled update of the given kind.
func (m *Metrics) Update(kind string) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(kind).Inc()
}

// BillCreated counts a newly created bill.
func (m *Metrics) BillCreated() {
	if m == nil {
		return
	}
	m.billsCreated.Inc()
}

// HandlerError counts an unexpected failure at stage.
func (m *Metrics) HandlerError(stage string) {
	if m == nil {
		return
	}
	m.handlerErrors.WithLabelValues(stage).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
