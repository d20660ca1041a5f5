package ports

import (
	"context"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// GraphQuery selects documents from the knowledge graph.
type GraphQuery struct {
	Text    string   `json:"text"`
	Topics  []string `json:"topics,omitempty"` // empty matches all topic graphs
	MaxDocs int      `json:"max_docs,omitempty"`
}

// DocRef links a stored document into the knowledge graph.
type DocRef struct {
	DocID string `json:"doc_id"`
	Topic string `json:"topic"`
}

// GraphStore answers graph-ranked retrieval queries.
type GraphStore interface {
	// Query returns at most query.MaxDocs chunks ranked by the store.
	Query(ctx context.Context, query GraphQuery) ([]domain.Chunk, error)

	// Upsert records document references so they participate in ranking.
	Upsert(ctx context.Context, refs ...DocRef) error
}
