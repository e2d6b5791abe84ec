// Package metrics collects and exposes Prometheus counters for
// authentication outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for authentication counters.
const (
	ResultSuccess       = "success"
	ResultNotFound      = "not_found"
	ResultWrongPassword = "wrong_password"
	ResultRejected      = "rejected"
	ResultConflict      = "conflict"
	ResultUnauthorized  = "unauthorized"
	ResultError         = "error"
)

// Collector counts authentication outcomes. All counters are safe for
// concurrent use.
type Collector struct {
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	tokenVerifies *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authgate_login_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authgate_register_total",
			Help: "Registration attempts by result.",
		}, []string{"result"}),
		tokenVerifies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authgate_token_verify_total",
			Help: "Session token verifications by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(c.logins, c.registrations, c.tokenVerifies)

	return c
}

func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordRegistration(result string) {
	c.registrations.WithLabelValues(result).Inc()
}

func (c *Collector) RecordTokenVerify(result string) {
	c.tokenVerifies.WithLabelValues(result).Inc()
}
