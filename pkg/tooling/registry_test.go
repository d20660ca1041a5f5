package tooling_test

import (
	"context"
	"errors"
	"testing"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/tooling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_InvokeUnknownTool(t *testing.T) {
	r := tooling.NewRegistry()

	_, err := r.Invoke(context.Background(), "nope", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := tooling.NewRegistry()
	desc := domain.ToolDescriptor{Name: "echo"}

	r.Register(desc, func(_ context.Context, _ map[string]any) (any, error) {
		return "first", nil
	})
	r.Register(desc, func(_ context.Context, _ map[string]any) (any, error) {
		return "second", nil
	})

	out, err := r.Invoke(context.Background(), "echo", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", out.Result)
	assert.Equal(t, "echo", out.Tool)
}

func TestRegistry_ListToolsSorted(t *testing.T) {
	r := tooling.NewRegistry()
	noop := func(_ context.Context, _ map[string]any) (any, error) { return nil, nil }

	r.Register(domain.ToolDescriptor{Name: "zeta"}, noop)
	r.Register(domain.ToolDescriptor{Name: "alpha"}, noop)

	descs := r.ListTools()
	require.Len(t, descs, 2)
	assert.Equal(t, "alpha", descs[0].Name)
	assert.Equal(t, "zeta", descs[1].Name)
}

func TestRegistry_ToolErrorIsReturned(t *testing.T) {
	r := tooling.NewRegistry()
	boom := errors.New("boom")

	r.Register(domain.ToolDescriptor{Name: "fail"}, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, boom
	})

	_, err := r.Invoke(context.Background(), "fail", nil)
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_Subset(t *testing.T) {
	r := tooling.Builtins().Subset("create_task", "send_email", "unknown_tool")

	descs := r.ListTools()
	require.Len(t, descs, 2)
	assert.Equal(t, "create_task", descs[0].Name)
	assert.Equal(t, "send_email", descs[1].Name)

	_, err := r.Invoke(context.Background(), "schedule_meeting", nil)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestBuiltins(t *testing.T) {
	r := tooling.Builtins()
	ctx := context.Background()

	t.Run("lists all four tools", func(t *testing.T) {
		descs := r.ListTools()
		names := make([]string, len(descs))
		for i, d := range descs {
			names[i] = d.Name
		}
		assert.Equal(t, []string{"create_task", "schedule_meeting", "send_email", "trigger_workflow"}, names)
	})

	t.Run("create_task", func(t *testing.T) {
		out, err := r.Invoke(ctx, "create_task", map[string]any{"title": "write report"})
		require.NoError(t, err)

		result, ok := out.Result.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "created", result["status"])
		assert.Equal(t, "write report", result["title"])
		assert.NotEmpty(t, result["task_id"])
	})

	t.Run("create_task requires title", func(t *testing.T) {
		_, err := r.Invoke(ctx, "create_task", map[string]any{})
		require.Error(t, err)
	})

	t.Run("send_email requires body", func(t *testing.T) {
		_, err := r.Invoke(ctx, "send_email", map[string]any{"to": "a@example.com"})
		require.Error(t, err)
	})

	t.Run("trigger_workflow defaults flow name", func(t *testing.T) {
		out, err := r.Invoke(ctx, "trigger_workflow", map[string]any{"payload": map[string]any{"k": "v"}})
		require.NoError(t, err)

		result, ok := out.Result.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "default", result["flow"])
	})
}
