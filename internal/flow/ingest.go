package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/daneel-ai/daneel/pkg/ports"
	"github.com/google/uuid"
)

// summaryLimit caps the stored summary length in bytes.
const summaryLimit = 500

// normalizeInput trims the raw input before storage.
func (n *nodes) normalizeInput(_ context.Context, s *domain.State) (graph.Result, error) {
	s.RawInput = strings.TrimSpace(s.RawInput)
	return graph.Continue(), nil
}

// detectIngestionType categorizes what kind of content is being stored.
func (n *nodes) detectIngestionType(_ context.Context, s *domain.State) (graph.Result, error) {
	lowered := strings.ToLower(s.RawInput)
	switch {
	case strings.Contains(lowered, "task") || strings.Contains(lowered, "todo"):
		s.IngestionType = domain.IngestionTask
	case strings.Contains(lowered, "call") || strings.Contains(lowered, "meeting"):
		s.IngestionType = domain.IngestionTranscript
	case strings.Contains(lowered, "contact"):
		s.IngestionType = domain.IngestionContact
	default:
		s.IngestionType = domain.IngestionNote
	}
	return graph.Continue(), nil
}

// transformForStorage attaches storage metadata: a truncated summary plus
// provenance fields the stores index on.
func (n *nodes) transformForStorage(_ context.Context, s *domain.State) (graph.Result, error) {
	summary := s.RawInput
	if len(summary) > summaryLimit {
		summary = summary[:summaryLimit] + "..."
	}
	s.Metadata = map[string]any{
		"summary":        summary,
		"length":         len(s.RawInput),
		"created_at":     time.Now().UTC().Format(time.RFC3339),
		"ingestion_type": string(s.IngestionType),
	}
	return graph.Continue(), nil
}

// writeMemory persists the interaction into the memory store. A write
// failure is non-fatal: it is recorded in Errors and the run continues,
// so the caller always learns the ingestion outcome.
func (n *nodes) writeMemory(ctx context.Context, s *domain.State) (graph.Result, error) {
	entry := domain.Entry{
		ID:        uuid.NewString(),
		Topic:     n.topicOrGeneral(s),
		Kind:      string(s.IngestionType),
		Content:   s.RawInput,
		Metadata:  s.Metadata,
		CreatedAt: time.Now().UTC(),
		Strength:  1.0,
	}
	if err := n.clients.Memory.Write(ctx, entry); err != nil {
		s.RecordError(fmt.Errorf("memory write: %w: %v", domain.ErrCapabilityUnavailable, err))
	}
	return graph.Continue(), nil
}

// writeRetrieval indexes the interaction into the retrieval store.
func (n *nodes) writeRetrieval(ctx context.Context, s *domain.State) (graph.Result, error) {
	chunk := domain.Chunk{
		ID:     uuid.NewString(),
		Source: string(domain.IntentRetrievalStore),
		Text:   s.RawInput,
		Score:  1.0,
		Metadata: map[string]any{
			"topic": n.topicOrGeneral(s),
		},
	}
	if err := n.clients.Retrieval.Index(ctx, chunk); err != nil {
		s.RecordError(fmt.Errorf("retrieval index: %w: %v", domain.ErrCapabilityUnavailable, err))
	}
	return graph.Continue(), nil
}

// writeGraph records a document reference in the knowledge graph.
func (n *nodes) writeGraph(ctx context.Context, s *domain.State) (graph.Result, error) {
	ref := ports.DocRef{DocID: uuid.NewString(), Topic: n.topicOrGeneral(s)}
	if err := n.clients.Graph.Upsert(ctx, ref); err != nil {
		s.RecordError(fmt.Errorf("graph upsert: %w: %v", domain.ErrCapabilityUnavailable, err))
	}
	return graph.Continue(), nil
}

// finishIngestion is the terminal node of the ingestion flow.
// It deliberately leaves Answer empty: ingestion produces no answer.
func (n *nodes) finishIngestion(_ context.Context, _ *domain.State) (graph.Result, error) {
	return graph.Continue(), nil
}

func (n *nodes) topicOrGeneral(s *domain.State) string {
	if s.Topic != "" {
		return s.Topic
	}
	return "general"
}
