// Package metrics exposes the Prometheus collectors of the garden planner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "garden"

// Metrics holds every collector registered by the service
type Metrics struct {
	CascadeOperations *prometheus.CounterVec
	CleanupRepairs    *prometheus.CounterVec
	Placements        *prometheus.CounterVec
	PendingPlacements prometheus.Gauge
}

// New creates the collectors and registers them on reg. A nil reg leaves them
// unregistered, which is what most unit tests want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CascadeOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascade_operations_total",
			Help:      "Child records touched by cascade rules, by collection and action.",
		}, []string{"collection", "action"}),
		CleanupRepairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_repairs_total",
			Help:      "Orphaned records repaired by the maintenance pass, by collection and action.",
		}, []string{"collection", "action"}),
		Placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placements_total",
			Help:      "Placement decisions, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		PendingPlacements: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_placements",
			Help:      "Optimistic placements still awaiting confirmation.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.CascadeOperations, m.CleanupRepairs, m.Placements, m.PendingPlacements)
	}
	return m
}

// NewRegistry returns a registry carrying the service collectors plus the Go
// runtime and process collectors.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, New(reg)
}

// ObserveCascade counts one child record touched by a cascade rule
func (m *Metrics) ObserveCascade(collection, action string) {
	if m == nil {
		return
	}
	m.CascadeOperations.WithLabelValues(collection, action).Inc()
}

// ObserveCleanup counts n orphans repaired in collection
func (m *Metrics) ObserveCleanup(collection, action string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CleanupRepairs.WithLabelValues(collection, action).Add(float64(n))
}

// ObservePlacement counts one placement decision
func (m *Metrics) ObservePlacement(kind string, ok bool) {
	if m == nil {
		return
	}
	outcome := "accepted"
	if !ok {
		outcome = "rejected"
	}
	m.Placements.WithLabelValues(kind, outcome).Inc()
}

// SetPending records the current number of pending optimistic placements
func (m *Metrics) SetPending(n int) {
	if m == nil {
		return
	}
	m.PendingPlacements.Set(float64(n))
}
