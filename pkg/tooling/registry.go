// Package tooling holds the tool registry and the built-in action tools.
package tooling

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// ToolFunc defines the signature for a tool implementation.
// It receives a context and a map of arguments, and returns a result or error.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

type registered struct {
	desc domain.ToolDescriptor
	fn   ToolFunc
}

// Registry manages the available tools. It implements ports.ToolInvoker.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]registered
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]registered),
	}
}

// Register adds a tool to the registry.
// If a tool with the same name exists, it is overwritten.
func (r *Registry) Register(desc domain.ToolDescriptor, fn ToolFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[desc.Name] = registered{desc: desc, fn: fn}
}

// Invoke looks up a tool by name and executes it. An unregistered name
// yields an error wrapping domain.ErrToolNotFound.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (domain.ToolOutcome, error) {
	r.mu.RLock()
	reg, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return domain.ToolOutcome{}, fmt.Errorf("%w: %s", domain.ErrToolNotFound, name)
	}

	result, err := reg.fn(ctx, args)
	if err != nil {
		return domain.ToolOutcome{}, err
	}
	return domain.ToolOutcome{Tool: name, Result: result}, nil
}

// Subset returns a new registry holding only the named tools. Unknown
// names are ignored, so a config listing a tool that was never built in
// simply leaves it out.
func (r *Registry) Subset(names ...string) *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub := NewRegistry()
	for _, name := range names {
		if reg, ok := r.tools[name]; ok {
			sub.tools[name] = reg
		}
	}
	return sub
}

// ListTools describes the registered tools, sorted by name.
func (r *Registry) ListTools() []domain.ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]domain.ToolDescriptor, 0, len(r.tools))
	for _, reg := range r.tools {
		descs = append(descs, reg.desc)
	}
	sort.Slice(descs, func(i, j int) bool {
		return descs[i].Name < descs[j].Name
	})
	return descs
}
