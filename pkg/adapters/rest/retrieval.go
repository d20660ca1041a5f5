package rest

import (
	"context"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// Retrieval implements ports.RetrievalStore against the retrieval store
// HTTP API.
type Retrieval struct {
	c *client
}

// NewRetrieval creates a retrieval store client for the given base URL.
func NewRetrieval(baseURL string, opts ...Option) *Retrieval {
	return &Retrieval{c: newClient("retrieval", baseURL, opts...)}
}

// Index sends chunks to POST /chunks.
func (r *Retrieval) Index(ctx context.Context, chunks ...domain.Chunk) error {
	payload := struct {
		Chunks []domain.Chunk `json:"chunks"`
	}{Chunks: chunks}
	return r.c.post(ctx, "/chunks", payload, nil)
}

// Search queries POST /search.
func (r *Retrieval) Search(ctx context.Context, query string, topK int) ([]domain.Chunk, error) {
	payload := struct {
		Query string `json:"query"`
		TopK  int    `json:"top_k"`
	}{Query: query, TopK: topK}

	var result struct {
		Chunks []domain.Chunk `json:"chunks"`
	}
	if err := r.c.post(ctx, "/search", payload, &result); err != nil {
		return nil, err
	}
	return result.Chunks, nil
}
