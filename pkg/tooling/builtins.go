package tooling

import (
	"context"
	"errors"
	"fmt"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// Builtins returns a registry preloaded with the assistant's action tools.
// The implementations are local stand-ins: they validate their arguments
// and answer with a synthetic confirmation, leaving real side-effects to
// whatever automation consumes the results downstream.
func Builtins() *Registry {
	r := NewRegistry()

	r.Register(domain.ToolDescriptor{
		Name:        "create_task",
		Description: "Create a task in the task tracker.",
		Parameters: map[string]any{
			"title": "short description of the task",
		},
	}, createTask)

	r.Register(domain.ToolDescriptor{
		Name:        "send_email",
		Description: "Send an email on the user's behalf.",
		Parameters: map[string]any{
			"body": "email body",
			"to":   "recipient address (optional)",
		},
	}, sendEmail)

	r.Register(domain.ToolDescriptor{
		Name:        "schedule_meeting",
		Description: "Schedule a meeting from a natural language request.",
		Parameters: map[string]any{
			"topic":   "topic the meeting belongs to",
			"request": "the original scheduling request",
		},
	}, scheduleMeeting)

	r.Register(domain.ToolDescriptor{
		Name:        "trigger_workflow",
		Description: "Trigger a named automation workflow.",
		Parameters: map[string]any{
			"flow":    "workflow name",
			"payload": "arbitrary payload forwarded to the workflow",
		},
	}, triggerWorkflow)

	return r
}

func decodeArgs(args map[string]any, out any) error {
	if err := mapstructure.Decode(args, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func createTask(_ context.Context, args map[string]any) (any, error) {
	var in struct {
		Title string `mapstructure:"title"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, errors.New("create_task: title is required")
	}

	return map[string]any{
		"task_id": uuid.NewString(),
		"title":   in.Title,
		"status":  "created",
	}, nil
}

func sendEmail(_ context.Context, args map[string]any) (any, error) {
	var in struct {
		Body string `mapstructure:"body"`
		To   string `mapstructure:"to"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Body == "" {
		return nil, errors.New("send_email: body is required")
	}

	return map[string]any{
		"message_id": uuid.NewString(),
		"to":         in.To,
		"status":     "queued",
	}, nil
}

func scheduleMeeting(_ context.Context, args map[string]any) (any, error) {
	var in struct {
		Topic   string `mapstructure:"topic"`
		Request string `mapstructure:"request"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Request == "" {
		return nil, errors.New("schedule_meeting: request is required")
	}

	return map[string]any{
		"event_id": uuid.NewString(),
		"topic":    in.Topic,
		"status":   "scheduled",
	}, nil
}

func triggerWorkflow(_ context.Context, args map[string]any) (any, error) {
	var in struct {
		Flow    string         `mapstructure:"flow"`
		Payload map[string]any `mapstructure:"payload"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Flow == "" {
		in.Flow = "default"
	}

	return map[string]any{
		"run_id": uuid.NewString(),
		"flow":   in.Flow,
		"status": "triggered",
	}, nil
}
