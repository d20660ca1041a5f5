package ports

import (
	"context"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// RetrievalStore searches indexed documents.
type RetrievalStore interface {
	// Search returns at most topK chunks ordered by descending relevance.
	Search(ctx context.Context, query string, topK int) ([]domain.Chunk, error)

	// Index adds documents to the store so later searches can find them.
	Index(ctx context.Context, chunks ...domain.Chunk) error
}
