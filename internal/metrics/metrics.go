// Package metrics collects Prometheus counters for the API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes recorded by RecordLogin.
const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginError              = "error"
)

// Recorder is what services report to.
type Recorder interface {
	RecordLogin(outcome string)
	RecordMessageCreated()
	RecordProjectCreated()
	RecordProjectDeleted()
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordLogin(string)    {}
func (Nop) RecordMessageCreated() {}
func (Nop) RecordProjectCreated() {}
func (Nop) RecordProjectDeleted() {}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	logins          *prometheus.CounterVec
	messagesCreated prometheus.Counter
	projectsCreated prometheus.Counter
	projectsDeleted prometheus.Counter
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates the counters and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "login_attempts_total",
			Help:      "Admin login attempts by outcome.",
		}, []string{"outcome"}),
		messagesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "messages_created_total",
			Help:      "Contact messages accepted.",
		}),
		projectsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "projects_created_total",
			Help:      "Projects created.",
		}),
		projectsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "projects_deleted_total",
			Help:      "Projects deleted.",
		}),
	}
	reg.MustRegister(c.logins, c.messagesCreated, c.projectsCreated, c.projectsDeleted)
	return c
}

func (c *Collector) RecordLogin(outcome string) { c.logins.WithLabelValues(outcome).Inc() }
func (c *Collector) RecordMessageCreated()      { c.messagesCreated.Inc() }
func (c *Collector) RecordProjectCreated()      { c.projectsCreated.Inc() }
func (c *Collector) RecordProjectDeleted()      { c.projectsDeleted.Inc() }

// Handler exposes the registry in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop{}
	}
	return r
}
