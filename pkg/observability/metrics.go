// Package observability wires graph execution hooks to Prometheus.
package observability

import (
	"context"

	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for graph runs. Register one
// Metrics per process against a registry of your choice.
type Metrics struct {
	runs         *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	nodeDuration *prometheus.HistogramVec
	nodeErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers the instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daneel",
			Subsystem: "graph",
			Name:      "runs_total",
			Help:      "Total graph runs by final status",
		}, []string{"graph", "status"}),

		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "daneel",
			Subsystem: "graph",
			Name:      "run_duration_seconds",
			Help:      "End-to-end graph run duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"graph"}),

		nodeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "daneel",
			Subsystem: "graph",
			Name:      "node_duration_seconds",
			Help:      "Per-node execution duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"graph", "node"}),

		nodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daneel",
			Subsystem: "graph",
			Name:      "node_errors_total",
			Help:      "Total node executions that returned an error",
		}, []string{"graph", "node"}),
	}
}

// Hooks returns graph hooks that feed these instruments.
func (m *Metrics) Hooks() graph.Hooks {
	return graph.Hooks{
		OnNodeLeave: func(_ context.Context, ev graph.NodeEvent) {
			m.nodeDuration.WithLabelValues(ev.Graph, ev.NodeID).Observe(ev.Duration.Seconds())
			if ev.Err != nil {
				m.nodeErrors.WithLabelValues(ev.Graph, ev.NodeID).Inc()
			}
		},
		OnRunFinish: func(_ context.Context, ev graph.RunEvent) {
			status := "ok"
			if ev.Err != nil {
				status = "error"
			}
			m.runs.WithLabelValues(ev.Graph, status).Inc()
			m.runDuration.WithLabelValues(ev.Graph).Observe(ev.Duration.Seconds())
		},
	}
}
