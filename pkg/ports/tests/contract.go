package tests

import (
	"context"
	"testing"
	"time"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunMemoryStoreContract verifies that a MemoryStore implementation
// adheres to the interface contract. Every adapter test should call it.
func RunMemoryStoreContract(t *testing.T, store ports.MemoryStore) {
	ctx := context.Background()

	t.Run("Write and Read", func(t *testing.T) {
		entry := domain.Entry{
			ID:        "contract-1",
			Topic:     "work",
			Kind:      "note",
			Content:   "the standup moved to async",
			CreatedAt: time.Now().UTC(),
			Strength:  1.0,
		}
		require.NoError(t, store.Write(ctx, entry))

		hits, err := store.Read(ctx, domain.MemoryQuery{Text: "standup", Topic: "work", Limit: 5})
		require.NoError(t, err)
		require.NotEmpty(t, hits, "a matching entry must be returned")
		assert.Equal(t, "the standup moved to async", hits[0].Content)
	})

	t.Run("Read respects topic filter", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, domain.Entry{
			ID:       "contract-2",
			Topic:    "family",
			Kind:     "note",
			Content:  "standup comedy show on friday",
			Strength: 1.0,
		}))

		hits, err := store.Read(ctx, domain.MemoryQuery{Text: "standup", Topic: "work", Limit: 5})
		require.NoError(t, err)
		for _, h := range hits {
			assert.Equal(t, "work", h.Topic)
		}
	})

	t.Run("Read orders by strength", func(t *testing.T) {
		require.NoError(t, store.Write(ctx,
			domain.Entry{ID: "contract-3", Topic: "projects", Kind: "note", Content: "roadmap draft v1", Strength: 0.2},
			domain.Entry{ID: "contract-4", Topic: "projects", Kind: "note", Content: "roadmap draft v2", Strength: 0.9},
		))

		hits, err := store.Read(ctx, domain.MemoryQuery{Text: "roadmap", Topic: "projects", Limit: 5})
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "contract-4", hits[0].ID, "stronger entry must come first")
	})

	t.Run("Read with no match returns empty", func(t *testing.T) {
		hits, err := store.Read(ctx, domain.MemoryQuery{Text: "nonexistent-needle", Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

// RunRetrievalStoreContract verifies a RetrievalStore implementation.
func RunRetrievalStoreContract(t *testing.T, store ports.RetrievalStore) {
	ctx := context.Background()

	t.Run("Index and Search", func(t *testing.T) {
		require.NoError(t, store.Index(ctx,
			domain.Chunk{ID: "doc-1", Source: "retrieval_store", Text: "quarterly planning notes", Score: 0.4},
			domain.Chunk{ID: "doc-2", Source: "retrieval_store", Text: "planning the offsite agenda", Score: 0.8},
		))

		hits, err := store.Search(ctx, "planning", 10)
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.GreaterOrEqual(t, hits[0].Score, hits[1].Score, "results must be ordered by score")
	})

	t.Run("Search honors topK", func(t *testing.T) {
		hits, err := store.Search(ctx, "planning", 1)
		require.NoError(t, err)
		assert.Len(t, hits, 1)
	})
}
