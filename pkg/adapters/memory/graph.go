package memory

import (
	"context"
	"sync"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/ports"
)

// Graph implements ports.GraphStore in memory. It keeps only document
// references; ranking is insertion order, newest last, which is enough
// for a deterministic stand-in.
type Graph struct {
	mu   sync.RWMutex
	refs []ports.DocRef
}

// NewGraph creates an empty in-memory graph store.
func NewGraph() *Graph {
	return &Graph{}
}

// Upsert records document references.
func (g *Graph) Upsert(_ context.Context, refs ...ports.DocRef) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refs = append(g.refs, refs...)
	return nil
}

// Query returns references in the requested topic graphs, capped at MaxDocs.
func (g *Graph) Query(_ context.Context, query ports.GraphQuery) ([]domain.Chunk, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	topicAllowed := func(topic string) bool {
		if len(query.Topics) == 0 {
			return true
		}
		for _, t := range query.Topics {
			if t == topic {
				return true
			}
		}
		return false
	}

	var hits []domain.Chunk
	for _, ref := range g.refs {
		if !topicAllowed(ref.Topic) {
			continue
		}
		hits = append(hits, domain.Chunk{
			ID:       ref.DocID,
			Source:   string(domain.IntentGraph),
			Text:     ref.DocID,
			Score:    1.0,
			Metadata: map[string]any{"topic": ref.Topic},
		})
		if query.MaxDocs > 0 && len(hits) >= query.MaxDocs {
			break
		}
	}
	return hits, nil
}
