package graph

import (
	"context"
	"sort"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// NodeFunc is a single step in the graph. It mutates the fields of the
// state it owns and returns a routing result: Continue to follow the
// node's unconditional edge, or Branch(label) to select a declared edge.
type NodeFunc func(ctx context.Context, s *domain.State) (Result, error)

// Result carries the routing decision of a node.
type Result struct {
	label string
}

// Continue follows the node's unconditional edge.
func Continue() Result { return Result{} }

// Branch selects the declared edge with the given label.
func Branch(label string) Result { return Result{label: label} }

// Label returns the selected edge label, empty for Continue.
func (r Result) Label() string { return r.label }

// nodeDef is the build-time description of one node.
type nodeDef struct {
	id       string
	fn       NodeFunc
	next     string            // unconditional edge target
	edges    map[string]string // branch label -> target
	labels   []string          // declaration order, for deterministic errors
	terminal bool
}

// Definition is an immutable graph description produced by a Builder
// and consumed by Compile.
type Definition struct {
	name  string
	entry string
	nodes map[string]*nodeDef
}

// Name returns the graph's name, used in logs and metrics.
func (d *Definition) Name() string { return d.name }

// NodeView is a read-only projection of a node for introspection
// (e.g. Mermaid rendering).
type NodeView struct {
	ID       string            `json:"id"`
	Next     string            `json:"next,omitempty"`
	Edges    map[string]string `json:"edges,omitempty"`
	Labels   []string          `json:"labels,omitempty"`
	Terminal bool              `json:"terminal,omitempty"`
	Entry    bool              `json:"entry,omitempty"`
}

// Nodes returns all nodes sorted by ID, entry node first.
func (d *Definition) Nodes() []NodeView {
	views := make([]NodeView, 0, len(d.nodes))
	for _, n := range d.nodes {
		views = append(views, NodeView{
			ID:       n.id,
			Next:     n.next,
			Edges:    n.edges,
			Labels:   n.labels,
			Terminal: n.terminal,
			Entry:    n.id == d.entry,
		})
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Entry != views[j].Entry {
			return views[i].Entry
		}
		return views[i].ID < views[j].ID
	})
	return views
}

// Builder assembles a graph definition with a fluent API.
// It is not safe for concurrent use; build the graph in one goroutine.
type Builder struct {
	name  string
	entry string
	nodes map[string]*nodeDef
	order []string
}

// NewBuilder creates an empty builder for a named graph.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		nodes: make(map[string]*nodeDef),
	}
}

// Add creates a node in the graph, or returns the existing builder for it.
func (b *Builder) Add(id string) *NodeBuilder {
	if n, ok := b.nodes[id]; ok {
		return &NodeBuilder{node: n}
	}
	n := &nodeDef{id: id}
	b.nodes[id] = n
	b.order = append(b.order, id)
	if b.entry == "" {
		b.entry = id
	}
	return &NodeBuilder{node: n}
}

// Entry sets the entry node. The first added node is the default.
func (b *Builder) Entry(id string) *Builder {
	b.entry = id
	return b
}

// Definition freezes the builder into a Definition.
func (b *Builder) Definition() *Definition {
	nodes := make(map[string]*nodeDef, len(b.nodes))
	for id, n := range b.nodes {
		nodes[id] = n
	}
	return &Definition{name: b.name, entry: b.entry, nodes: nodes}
}

// NodeBuilder configures a single node.
type NodeBuilder struct {
	node *nodeDef
}

// Run sets the node's step function.
func (n *NodeBuilder) Run(fn NodeFunc) *NodeBuilder {
	n.node.fn = fn
	return n
}

// Go adds the unconditional edge to the target node.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.node.next = target
	return n
}

// Branch declares a labeled edge to the target node. A node whose
// function returns Branch(label) must have declared that label here;
// undeclared labels fail at compile time (missing table) or run time
// (label not in table).
func (n *NodeBuilder) Branch(label, target string) *NodeBuilder {
	if n.node.edges == nil {
		n.node.edges = make(map[string]string)
	}
	if _, exists := n.node.edges[label]; !exists {
		n.node.labels = append(n.node.labels, label)
	}
	n.node.edges[label] = target
	return n
}

// Terminal marks the node as a terminal node: it runs last and has no
// outgoing edges.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.node.terminal = true
	n.node.next = ""
	n.node.edges = nil
	n.node.labels = nil
	return n
}
