package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/graph"
)

// ingestionMarkers are phrases that signal the user wants something stored.
var ingestionMarkers = []string{
	"remember that",
	"note that",
	"keep in mind",
	"store this",
	"store only",
	"save this",
}

// classifyInteraction sets InteractionType exactly once and branches on it.
// A caller-provided type wins; otherwise heuristics decide, and an
// ambiguous input fails closed to query so no interaction is dropped.
func (n *nodes) classifyInteraction(_ context.Context, s *domain.State) (graph.Result, error) {
	if s.InteractionType == domain.InteractionUnknown {
		lowered := strings.ToLower(s.RawInput)
		kind := domain.InteractionQuery
		for _, marker := range ingestionMarkers {
			if strings.Contains(lowered, marker) {
				kind = domain.InteractionIngestion
				break
			}
		}
		if kind == domain.InteractionQuery && !looksLikeQuery(lowered) {
			n.logger.Debug("interaction classification ambiguous, defaulting to query", "input_len", len(s.RawInput))
		}
		s.InteractionType = kind
	}
	return graph.Branch(string(s.InteractionType)), nil
}

func looksLikeQuery(lowered string) bool {
	if strings.Contains(lowered, "?") {
		return true
	}
	for _, w := range []string{"what", "who", "when", "where", "how", "why", "schedule", "create", "send", "trigger"} {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

// classifyTopic sets Topic from the taxonomy, consulting the memory store
// (read-only) to bias toward topics of prior related entries. Memory
// failures are recorded and the run continues with the default topic.
func (n *nodes) classifyTopic(ctx context.Context, s *domain.State) (graph.Result, error) {
	lowered := strings.ToLower(s.RawInput)
	for _, topic := range n.topics {
		if strings.Contains(lowered, topic) {
			s.Topic = topic
			return graph.Continue(), nil
		}
	}

	hits, err := n.clients.Memory.Read(ctx, domain.MemoryQuery{Text: s.RawInput, Limit: 1})
	if err != nil {
		s.RecordError(fmt.Errorf("topic classifier: %w: %v", domain.ErrCapabilityUnavailable, err))
	} else if len(hits) > 0 && hits[0].Topic != "" {
		s.Topic = hits[0].Topic
		return graph.Continue(), nil
	}

	s.Topic = "general"
	return graph.Continue(), nil
}
