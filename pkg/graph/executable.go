package graph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// runner is the internal contract both interpreters satisfy.
type runner interface {
	run(ctx context.Context, s *domain.State, exe *Executable) ([]string, error)
}

// Executable is a validated graph ready to run. It holds no per-run
// state and is safe for concurrent use by independent runs.
type Executable struct {
	def         *Definition
	runner      runner
	hooks       Hooks
	logger      *slog.Logger
	useFallback bool
}

// Definition returns the compiled definition for introspection.
func (e *Executable) Definition() *Definition { return e.def }

// Run executes the graph to completion over the given state.
// Nodes execute strictly sequentially; cancellation is honored between
// nodes. A node error terminates the run with an *ExecutionError.
func (e *Executable) Run(ctx context.Context, s *domain.State) error {
	started := time.Now()
	path, err := e.runner.run(ctx, s, e)
	e.hooks.runFinish(ctx, RunEvent{
		Graph:    e.def.name,
		Path:     path,
		Duration: time.Since(started),
		Err:      err,
	})
	return err
}

// step runs one node with hooks, timing and logging. Shared by both runners.
func (e *Executable) step(ctx context.Context, s *domain.State, id string, fn NodeFunc) (Result, error) {
	e.hooks.nodeEnter(ctx, e.def.name, id)
	e.logger.Debug("node enter", "graph", e.def.name, "node", id)

	started := time.Now()
	res, err := fn(ctx, s)
	e.hooks.nodeLeave(ctx, NodeEvent{
		Graph:    e.def.name,
		NodeID:   id,
		Duration: time.Since(started),
		Err:      err,
	})
	if err != nil {
		e.logger.Debug("node failed", "graph", e.def.name, "node", id, "err", err)
	}
	return res, err
}

// checkCancelled stops the walk before launching the next node.
func (e *Executable) checkCancelled(ctx context.Context, nextID string) error {
	if err := ctx.Err(); err != nil {
		return &ExecutionError{Graph: e.def.name, NodeID: nextID, Err: err}
	}
	return nil
}

// chainRunner is the compiled form: every edge is resolved to a node
// pointer at compile time, so dispatch is pointer-chasing only.
type chainRunner struct {
	entry *chainNode
}

type chainNode struct {
	id       string
	fn       NodeFunc
	terminal bool
	next     *chainNode
	edges    map[string]*chainNode
}

func newChainRunner(def *Definition) *chainRunner {
	compiled := make(map[string]*chainNode, len(def.nodes))
	for id, n := range def.nodes {
		compiled[id] = &chainNode{id: id, fn: n.fn, terminal: n.terminal}
	}
	for id, n := range def.nodes {
		cn := compiled[id]
		if n.next != "" {
			cn.next = compiled[n.next]
		}
		if len(n.edges) > 0 {
			cn.edges = make(map[string]*chainNode, len(n.edges))
			for label, target := range n.edges {
				cn.edges[label] = compiled[target]
			}
		}
	}
	return &chainRunner{entry: compiled[def.entry]}
}

func (r *chainRunner) run(ctx context.Context, s *domain.State, exe *Executable) ([]string, error) {
	var path []string
	cur := r.entry
	for cur != nil {
		if err := exe.checkCancelled(ctx, cur.id); err != nil {
			return path, err
		}
		path = append(path, cur.id)

		res, err := exe.step(ctx, s, cur.id, cur.fn)
		if err != nil {
			return path, &ExecutionError{Graph: exe.def.name, NodeID: cur.id, Err: err}
		}
		if cur.terminal {
			return path, nil
		}

		if label := res.Label(); label != "" {
			next, ok := cur.edges[label]
			if !ok {
				return path, &ExecutionError{
					Graph:  exe.def.name,
					NodeID: cur.id,
					Err:    fmt.Errorf("undeclared branch label %q", label),
				}
			}
			cur = next
			continue
		}
		if cur.next == nil {
			return path, &ExecutionError{
				Graph:  exe.def.name,
				NodeID: cur.id,
				Err:    fmt.Errorf("node returned Continue but declares only branch edges"),
			}
		}
		cur = cur.next
	}
	return path, nil
}

// walkRunner is the fallback interpreter: a plain ordered traversal of
// the declared definition with an explicit branch-label dispatch table.
// Behaviorally equivalent to the compiled chain for this engine (no
// parallel node execution, no cross-run checkpointing).
type walkRunner struct {
	def *Definition
}

func newWalkRunner(def *Definition) *walkRunner {
	return &walkRunner{def: def}
}

func (r *walkRunner) run(ctx context.Context, s *domain.State, exe *Executable) ([]string, error) {
	var path []string
	currentID := r.def.entry
	for currentID != "" {
		if err := exe.checkCancelled(ctx, currentID); err != nil {
			return path, err
		}
		node := r.def.nodes[currentID]
		path = append(path, currentID)

		res, err := exe.step(ctx, s, currentID, node.fn)
		if err != nil {
			return path, &ExecutionError{Graph: exe.def.name, NodeID: currentID, Err: err}
		}
		if node.terminal {
			return path, nil
		}

		if label := res.Label(); label != "" {
			target, ok := node.edges[label]
			if !ok {
				return path, &ExecutionError{
					Graph:  exe.def.name,
					NodeID: currentID,
					Err:    fmt.Errorf("undeclared branch label %q", label),
				}
			}
			currentID = target
			continue
		}
		if node.next == "" {
			return path, &ExecutionError{
				Graph:  exe.def.name,
				NodeID: currentID,
				Err:    fmt.Errorf("node returned Continue but declares only branch edges"),
			}
		}
		currentID = node.next
	}
	return path, nil
}
