package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/google/uuid"
)

// planTools inspects the input and produces the ordered tool plan.
// Rules are checked in a fixed order so the plan is deterministic; more
// than one tool may be planned for a single interaction.
func (n *nodes) planTools(_ context.Context, s *domain.State) (graph.Result, error) {
	lowered := strings.ToLower(s.RawInput)

	var plan []domain.ToolCall
	if containsAny(lowered, "task", "todo") {
		plan = append(plan, domain.ToolCall{
			Name: "create_task",
			Args: map[string]any{"title": s.RawInput},
		})
	}
	if strings.Contains(lowered, "email") {
		plan = append(plan, domain.ToolCall{
			Name: "send_email",
			Args: map[string]any{"body": s.RawInput},
		})
	}
	if containsAny(lowered, "meeting", "schedule") {
		plan = append(plan, domain.ToolCall{
			Name: "schedule_meeting",
			Args: map[string]any{"topic": n.topicOrGeneral(s), "request": s.RawInput},
		})
	}
	if strings.Contains(lowered, "workflow") {
		plan = append(plan, domain.ToolCall{
			Name: "trigger_workflow",
			Args: map[string]any{"flow": "default", "payload": map[string]any{"input": s.RawInput}},
		})
	}

	s.ToolPlan = plan
	if len(plan) == 0 {
		return graph.Branch(labelNoTools), nil
	}
	return graph.Branch(labelHasTools), nil
}

// runTools executes the plan strictly in order, each call fully resolved
// before the next begins. A failing tool is recorded in Errors and as a
// failed outcome; the remaining plan still runs.
func (n *nodes) runTools(ctx context.Context, s *domain.State) (graph.Result, error) {
	for _, call := range s.ToolPlan {
		outcome, err := n.clients.Tools.Invoke(ctx, call.Name, call.Args)
		if err != nil {
			s.RecordError(fmt.Errorf("tool %s: %v", call.Name, err))
			s.ToolResults = append(s.ToolResults, domain.ToolOutcome{
				Tool:    call.Name,
				IsError: true,
				Error:   err.Error(),
			})
			continue
		}
		s.ToolResults = append(s.ToolResults, outcome)
	}
	return graph.Continue(), nil
}

// ingestToolResults writes tool outcomes back to memory so future
// queries can recall what the assistant did. Failures are non-fatal.
func (n *nodes) ingestToolResults(ctx context.Context, s *domain.State) (graph.Result, error) {
	if len(s.ToolResults) == 0 {
		return graph.Continue(), nil
	}

	serialized, err := json.Marshal(s.ToolResults)
	if err != nil {
		s.RecordError(fmt.Errorf("tool result serialization: %v", err))
		return graph.Continue(), nil
	}

	entry := domain.Entry{
		ID:        uuid.NewString(),
		Topic:     n.topicOrGeneral(s),
		Kind:      "tool_result",
		Content:   string(serialized),
		Metadata:  map[string]any{"source": "tool_ingest"},
		CreatedAt: time.Now().UTC(),
		Strength:  1.0,
	}
	if err := n.clients.Memory.Write(ctx, entry); err != nil {
		s.RecordError(fmt.Errorf("tool result ingest: %w: %v", domain.ErrCapabilityUnavailable, err))
	}
	return graph.Continue(), nil
}
