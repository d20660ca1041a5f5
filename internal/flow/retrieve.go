package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/daneel-ai/daneel/pkg/ports"
)

// routeRetrieval decides RetrievalIntent from the input and branches on
// it. The decision is made here, once, before any retrieval executes;
// the retrieve node only reads it.
func (n *nodes) routeRetrieval(_ context.Context, s *domain.State) (graph.Result, error) {
	lowered := strings.ToLower(s.RawInput)
	switch {
	case containsAny(lowered, "remember", "recall", "said", "told"):
		s.RetrievalIntent = domain.IntentMemory
	case containsAny(lowered, "how", "why", "relate", "connected"):
		s.RetrievalIntent = domain.IntentGraph
	case containsAny(lowered, "what", "who", "when", "where", "?"):
		s.RetrievalIntent = domain.IntentRetrievalStore
	default:
		s.RetrievalIntent = domain.IntentNone
	}
	return graph.Branch(string(s.RetrievalIntent)), nil
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// retrieve queries the capability client selected by RetrievalIntent and
// fills RetrievedChunks ordered by descending score (stable tie-break).
// A store failure thins the answer context instead of aborting the run.
func (n *nodes) retrieve(ctx context.Context, s *domain.State) (graph.Result, error) {
	var (
		chunks []domain.Chunk
		err    error
	)

	switch s.RetrievalIntent {
	case domain.IntentMemory:
		var hits []domain.Entry
		hits, err = n.clients.Memory.Read(ctx, domain.MemoryQuery{
			Text:  s.RawInput,
			Topic: s.Topic,
			Limit: n.topK,
		})
		for _, hit := range hits {
			chunks = append(chunks, domain.Chunk{
				ID:       hit.ID,
				Source:   string(domain.IntentMemory),
				Text:     hit.Content,
				Score:    hit.Strength,
				Metadata: hit.Metadata,
			})
		}
	case domain.IntentRetrievalStore:
		chunks, err = n.clients.Retrieval.Search(ctx, s.RawInput, n.topK)
	case domain.IntentGraph:
		chunks, err = n.clients.Graph.Query(ctx, ports.GraphQuery{
			Text:    s.RawInput,
			Topics:  []string{n.topicOrGeneral(s)},
			MaxDocs: n.topK,
		})
	default:
		return graph.Continue(), nil
	}

	if err != nil {
		s.RecordError(fmt.Errorf("retrieve (%s): %w: %v", s.RetrievalIntent, domain.ErrCapabilityUnavailable, err))
		return graph.Continue(), nil
	}

	domain.SortChunks(chunks)
	s.RetrievedChunks = chunks
	return graph.Continue(), nil
}

// rerank reorders RetrievedChunks by score after dropping duplicate
// texts (first occurrence wins). The operation is idempotent: reranking
// an already-ranked sequence yields the same order.
func (n *nodes) rerank(_ context.Context, s *domain.State) (graph.Result, error) {
	if len(s.RetrievedChunks) == 0 {
		return graph.Continue(), nil
	}

	seen := make(map[string]bool, len(s.RetrievedChunks))
	deduped := s.RetrievedChunks[:0]
	for _, chunk := range s.RetrievedChunks {
		if seen[chunk.Text] {
			continue
		}
		seen[chunk.Text] = true
		deduped = append(deduped, chunk)
	}
	s.RetrievedChunks = deduped
	domain.SortChunks(s.RetrievedChunks)
	return graph.Continue(), nil
}
