// Package metrics exposes authentication outcome counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gatehouse"

// Outcome labels.
const (
	OutcomeSuccess            = "success"
	OutcomeValidationFailed   = "validation_failed"
	OutcomeUsernameTaken      = "username_taken"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeTokenRequired      = "token_required"
	OutcomeTokenInvalid       = "token_invalid"
	OutcomeError              = "error"
)

// Metrics owns a private registry so tests and multiple instances never collide.
type Metrics struct {
	registry      *prometheus.Registry
	registrations *prometheus.CounterVec
	logins        *prometheus.CounterVec
	gateDecisions *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		}, []string{"outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		gateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_gate_decisions_total",
			Help:      "Access gate decisions by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.registrations,
		m.logins,
		m.gateDecisions,
	)

	return m
}

func (m *Metrics) ObserveRegistration(outcome string) {
	m.registrations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveLogin(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveGateDecision(outcome string) {
	m.gateDecisions.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
