// Package metrics exposes engine activity as Prometheus metrics.
package metrics

import (
	"context"
	"net/http"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so several engines (or tests) never
// collide on the global one.
type Collector struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	steps       prometheus.Counter
	consumed    prometheus.Histogram
	diagnostics *prometheus.CounterVec
	loads       *prometheus.CounterVec
}

// NewCollector creates and registers the automaton metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_runs_total",
				Help: "Total number of simulations by outcome",
			},
			[]string{"automaton", "reason"},
		),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "automaton_steps_total",
			Help: "Total number of transitions taken",
		}),
		consumed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "automaton_symbols_consumed",
			Help:    "Symbols consumed per simulation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_load_diagnostics_total",
				Help: "Diagnostics reported while loading definitions, by kind",
			},
			[]string{"kind"},
		),
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_loads_total",
				Help: "Definitions loaded, by validity",
			},
			[]string{"valid"},
		),
	}
	c.registry.MustRegister(c.runs, c.steps, c.consumed, c.diagnostics, c.loads)
	return c
}

// Hooks returns lifecycle hooks recording into the collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	finish := func(ctx context.Context, e *domain.RunEvent) {
		c.runs.WithLabelValues(e.Automaton, string(e.Result.Reason)).Inc()
		c.consumed.Observe(float64(e.Result.Consumed))
	}
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			valid := "false"
			if e.Valid {
				valid = "true"
			}
			c.loads.WithLabelValues(valid).Inc()
			for _, d := range e.Diagnostics {
				c.diagnostics.WithLabelValues(string(d.Kind)).Inc()
			}
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			c.steps.Inc()
		},
		OnAccept: finish,
		OnReject: finish,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Runs returns the run counter, for tests and introspection.
func (c *Collector) Runs() *prometheus.CounterVec {
	return c.runs
}

// Steps returns the step counter.
func (c *Collector) Steps() prometheus.Counter {
	return c.steps
}

// Diagnostics returns the load diagnostics counter.
func (c *Collector) Diagnostics() *prometheus.CounterVec {
	return c.diagnostics
}
