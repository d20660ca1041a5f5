package rest

import (
	"context"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/ports"
)

// Graph implements ports.GraphStore against the graph store HTTP API.
type Graph struct {
	c *client
}

// NewGraph creates a graph store client for the given base URL.
func NewGraph(baseURL string, opts ...Option) *Graph {
	return &Graph{c: newClient("graph", baseURL, opts...)}
}

// Upsert sends document references to POST /docs.
func (g *Graph) Upsert(ctx context.Context, refs ...ports.DocRef) error {
	payload := struct {
		Docs []ports.DocRef `json:"docs"`
	}{Docs: refs}
	return g.c.post(ctx, "/docs", payload, nil)
}

// Query runs a graph traversal via POST /query.
func (g *Graph) Query(ctx context.Context, query ports.GraphQuery) ([]domain.Chunk, error) {
	var result struct {
		Chunks []domain.Chunk `json:"chunks"`
	}
	if err := g.c.post(ctx, "/query", query, &result); err != nil {
		return nil, err
	}
	return result.Chunks, nil
}
