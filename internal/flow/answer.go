package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/graph"
)

// generateAnswer is the terminal node of the reasoning flow. It
// synthesizes the answer from topic, retrieved chunks and tool results.
// Its failure is the one fatal runtime error: no partial answer is
// surfaced to the caller.
func (n *nodes) generateAnswer(_ context.Context, s *domain.State) (graph.Result, error) {
	if s.InteractionType != domain.InteractionQuery {
		return graph.Continue(), fmt.Errorf("%w: reached terminal node with interaction type %q",
			domain.ErrAnswerGeneration, s.InteractionType)
	}

	var parts []string
	if len(s.RetrievedChunks) > 0 {
		top := s.RetrievedChunks[0]
		parts = append(parts, fmt.Sprintf("Here's what I found: %s", top.Text))
		if extra := len(s.RetrievedChunks) - 1; extra > 0 {
			parts = append(parts, fmt.Sprintf("(%d more related items.)", extra))
		}
	}
	for _, outcome := range s.ToolResults {
		if outcome.IsError {
			parts = append(parts, fmt.Sprintf("I couldn't complete %s: %s.", outcome.Tool, outcome.Error))
			continue
		}
		parts = append(parts, fmt.Sprintf("Done: %s.", outcome.Tool))
	}
	if len(parts) == 0 {
		parts = append(parts, "I processed your request, but found nothing relevant to add.")
	}

	s.Answer = strings.Join(parts, " ")
	return graph.Continue(), nil
}
