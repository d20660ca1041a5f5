package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// Retrieval implements ports.RetrievalStore in memory.
type Retrieval struct {
	mu     sync.RWMutex
	chunks []domain.Chunk
}

// NewRetrieval creates an empty in-memory retrieval store.
func NewRetrieval() *Retrieval {
	return &Retrieval{}
}

// Index adds chunks to the store.
func (r *Retrieval) Index(_ context.Context, chunks ...domain.Chunk) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chunks = append(r.chunks, chunks...)
	return nil
}

// Search returns matching chunks ordered by descending score (stable).
func (r *Retrieval) Search(_ context.Context, query string, topK int) ([]domain.Chunk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hits []domain.Chunk
	for _, c := range r.chunks {
		if Matches(query, c.Text) {
			hits = append(hits, c)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}
