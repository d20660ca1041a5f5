package graph

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Option configures compilation.
type Option func(*Executable)

// WithFallbackInterpreter selects the hand-rolled sequential interpreter
// instead of the compiled chain. Observable behavior is identical.
func WithFallbackInterpreter() Option {
	return func(e *Executable) {
		e.useFallback = true
	}
}

// WithHooks registers lifecycle callbacks for the executable. Repeated
// use composes: every registered hook set runs, in registration order.
func WithHooks(hooks Hooks) Option {
	return func(e *Executable) {
		e.hooks = e.hooks.merge(hooks)
	}
}

// WithLogger sets a structured logger for node transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executable) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Compile validates the definition and produces an Executable.
// A definition with structural problems fails with *DefinitionError and
// yields no Executable; malformed graphs must never reach run time.
func Compile(def *Definition, opts ...Option) (*Executable, error) {
	if issues := validate(def); len(issues) > 0 {
		return nil, &DefinitionError{Graph: def.name, Issues: issues}
	}

	exe := &Executable{
		def:    def,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(exe)
	}

	if exe.useFallback {
		exe.runner = newWalkRunner(def)
	} else {
		exe.runner = newChainRunner(def)
	}
	return exe, nil
}

// validate collects every structural issue in deterministic (sorted) order.
func validate(def *Definition) []string {
	var issues []string

	if def.entry == "" {
		issues = append(issues, "no entry node declared")
	} else if _, ok := def.nodes[def.entry]; !ok {
		issues = append(issues, fmt.Sprintf("entry node %q not found", def.entry))
	}

	ids := make([]string, 0, len(def.nodes))
	for id := range def.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	hasTerminal := false
	for _, id := range ids {
		n := def.nodes[id]
		if n.fn == nil {
			issues = append(issues, fmt.Sprintf("node %q has no step function", id))
		}
		if n.terminal {
			hasTerminal = true
			if n.next != "" || len(n.edges) > 0 {
				issues = append(issues, fmt.Sprintf("terminal node %q has outgoing edges", id))
			}
			continue
		}
		if n.next == "" && len(n.edges) == 0 {
			issues = append(issues, fmt.Sprintf("node %q is a dead end: no outgoing edges and not terminal", id))
		}
		if n.next != "" {
			if _, ok := def.nodes[n.next]; !ok {
				issues = append(issues, fmt.Sprintf("node %q: edge to unknown node %q", id, n.next))
			}
		}
		for _, label := range n.labels {
			target := n.edges[label]
			if _, ok := def.nodes[target]; !ok {
				issues = append(issues, fmt.Sprintf("node %q: branch %q to unknown node %q", id, label, target))
			}
		}
	}
	if len(def.nodes) > 0 && !hasTerminal {
		issues = append(issues, "graph has no terminal node")
	}

	// Structural checks below only make sense on a well-formed edge set.
	if len(issues) > 0 {
		return issues
	}

	reachable := reach(def)
	for _, id := range ids {
		if !reachable[id] {
			issues = append(issues, fmt.Sprintf("node %q is unreachable", id))
		}
	}

	if cycleNode := findCycle(def); cycleNode != "" {
		issues = append(issues, fmt.Sprintf("cycle detected involving node %q", cycleNode))
	}

	return issues
}

// successors returns a node's outgoing targets in deterministic order.
func successors(n *nodeDef) []string {
	var out []string
	if n.next != "" {
		out = append(out, n.next)
	}
	for _, label := range n.labels {
		out = append(out, n.edges[label])
	}
	return out
}

func reach(def *Definition) map[string]bool {
	seen := map[string]bool{def.entry: true}
	queue := []string{def.entry}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, succ := range successors(def.nodes[id]) {
			if !seen[succ] {
				seen[succ] = true
				queue = append(queue, succ)
			}
		}
	}
	return seen
}

// findCycle returns a node on a cycle, or empty if the graph is acyclic.
func findCycle(def *Definition) string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(def.nodes))

	var visit func(id string) string
	visit = func(id string) string {
		color[id] = gray
		for _, succ := range successors(def.nodes[id]) {
			switch color[succ] {
			case gray:
				return succ
			case white:
				if hit := visit(succ); hit != "" {
					return hit
				}
			}
		}
		color[id] = black
		return ""
	}

	ids := make([]string, 0, len(def.nodes))
	for id := range def.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if color[id] == white {
			if hit := visit(id); hit != "" {
				return hit
			}
		}
	}
	return ""
}
