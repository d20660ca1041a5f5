package graph

import (
	"context"
	"time"
)

// NodeEvent describes one completed node execution.
type NodeEvent struct {
	Graph    string
	NodeID   string
	Duration time.Duration
	Err      error
}

// RunEvent describes one completed run.
type RunEvent struct {
	Graph    string
	Path     []string // node IDs in execution order
	Duration time.Duration
	Err      error
}

// Hooks defines optional callbacks for run observability.
// Nil callbacks are skipped; hooks must not mutate the state.
type Hooks struct {
	OnNodeEnter func(ctx context.Context, graph, nodeID string)
	OnNodeLeave func(ctx context.Context, ev NodeEvent)
	OnRunFinish func(ctx context.Context, ev RunEvent)
}

// merge combines two hook sets; both run, h first.
func (h Hooks) merge(next Hooks) Hooks {
	return Hooks{
		OnNodeEnter: func(ctx context.Context, graph, nodeID string) {
			h.nodeEnter(ctx, graph, nodeID)
			next.nodeEnter(ctx, graph, nodeID)
		},
		OnNodeLeave: func(ctx context.Context, ev NodeEvent) {
			h.nodeLeave(ctx, ev)
			next.nodeLeave(ctx, ev)
		},
		OnRunFinish: func(ctx context.Context, ev RunEvent) {
			h.runFinish(ctx, ev)
			next.runFinish(ctx, ev)
		},
	}
}

func (h Hooks) nodeEnter(ctx context.Context, graph, nodeID string) {
	if h.OnNodeEnter != nil {
		h.OnNodeEnter(ctx, graph, nodeID)
	}
}

func (h Hooks) nodeLeave(ctx context.Context, ev NodeEvent) {
	if h.OnNodeLeave != nil {
		h.OnNodeLeave(ctx, ev)
	}
}

func (h Hooks) runFinish(ctx context.Context, ev RunEvent) {
	if h.OnRunFinish != nil {
		h.OnRunFinish(ctx, ev)
	}
}
