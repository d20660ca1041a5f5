package flow

import (
	"context"
	"errors"

	inmem "github.com/daneel-ai/daneel/pkg/adapters/memory"
	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/ports"
	"github.com/daneel-ai/daneel/pkg/tooling"
)

// errStore is the injected failure for the degraded-capability tests.
var errStore = errors.New("store offline")

type failingMemory struct{}

func (failingMemory) Write(context.Context, ...domain.Entry) error { return errStore }
func (failingMemory) Read(context.Context, domain.MemoryQuery) ([]domain.Entry, error) {
	return nil, errStore
}

type failingRetrieval struct{}

func (failingRetrieval) Index(context.Context, ...domain.Chunk) error { return errStore }
func (failingRetrieval) Search(context.Context, string, int) ([]domain.Chunk, error) {
	return nil, errStore
}

type failingGraph struct{}

func (failingGraph) Upsert(context.Context, ...ports.DocRef) error { return errStore }
func (failingGraph) Query(context.Context, ports.GraphQuery) ([]domain.Chunk, error) {
	return nil, errStore
}

// scriptedTools wraps the builtin registry and forces named tools to fail.
type scriptedTools struct {
	inner ports.ToolInvoker
	fail  map[string]error
}

func newScriptedTools(fail map[string]error) *scriptedTools {
	return &scriptedTools{inner: tooling.Builtins(), fail: fail}
}

func (s *scriptedTools) Invoke(ctx context.Context, name string, args map[string]any) (domain.ToolOutcome, error) {
	if err, ok := s.fail[name]; ok {
		return domain.ToolOutcome{}, err
	}
	return s.inner.Invoke(ctx, name, args)
}

func (s *scriptedTools) ListTools() []domain.ToolDescriptor {
	return s.inner.ListTools()
}

func inMemoryClients() Clients {
	return Clients{
		Memory:    inmem.NewStore(),
		Retrieval: inmem.NewRetrieval(),
		Graph:     inmem.NewGraph(),
		Tools:     tooling.Builtins(),
	}
}
