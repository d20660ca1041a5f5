package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathRecorder captures the executed node path via run hooks.
type pathRecorder struct {
	path []string
}

func (p *pathRecorder) hooks() graph.Hooks {
	return graph.Hooks{
		OnRunFinish: func(_ context.Context, ev graph.RunEvent) {
			p.path = ev.Path
		},
	}
}

func TestBuild_Validates(t *testing.T) {
	exe, err := Build(inMemoryClients(), Config{})
	require.NoError(t, err)
	require.NotNil(t, exe)

	nodes := exe.Definition().Nodes()
	require.NotEmpty(t, nodes)
	assert.Equal(t, NodeClassifyInteraction, nodes[0].ID, "classifier is the entry node")

	terminals := 0
	for _, n := range nodes {
		if n.Terminal {
			terminals++
		}
	}
	assert.Equal(t, 2, terminals, "one terminal per subgraph")
}

func TestIngestionRun(t *testing.T) {
	clients := inMemoryClients()
	rec := &pathRecorder{}
	exe, err := Build(clients, Config{}, graph.WithHooks(rec.hooks()))
	require.NoError(t, err)

	s := domain.NewState("Remember that I prefer async standups")
	require.NoError(t, exe.Run(context.Background(), s))

	assert.Equal(t, domain.InteractionIngestion, s.InteractionType)
	assert.Empty(t, s.Answer, "ingestion produces no answer")
	assert.Empty(t, s.ToolResults)
	assert.Equal(t, []string{
		NodeClassifyInteraction,
		NodeNormalizeInput,
		NodeDetectIngestion,
		NodeTransformStorage,
		NodeWriteMemory,
		NodeWriteRetrieval,
		NodeWriteGraph,
		NodeFinishIngestion,
	}, rec.path)
}

func TestQueryRunAnswersFromIngestedData(t *testing.T) {
	clients := inMemoryClients()
	exe, err := Build(clients, Config{})
	require.NoError(t, err)
	ctx := context.Background()

	ingest := domain.NewState("Remember that I prefer async standups")
	require.NoError(t, exe.Run(ctx, ingest))

	query := domain.NewState("What did I say about standups?")
	require.NoError(t, exe.Run(ctx, query))

	assert.Equal(t, domain.InteractionQuery, query.InteractionType)
	assert.Contains(t, query.Answer, "async standups")
	assert.Empty(t, query.Errors)
}

func TestQueryRunWithTools(t *testing.T) {
	rec := &pathRecorder{}
	exe, err := Build(inMemoryClients(), Config{}, graph.WithHooks(rec.hooks()))
	require.NoError(t, err)

	s := domain.NewState("Create a task to buy milk")
	require.NoError(t, exe.Run(context.Background(), s))

	assert.Equal(t, domain.IntentNone, s.RetrievalIntent)
	require.Len(t, s.ToolResults, 1)
	assert.Equal(t, "create_task", s.ToolResults[0].Tool)
	assert.Contains(t, s.Answer, "Done: create_task.")
	assert.Contains(t, rec.path, NodeRunTools)
	assert.NotContains(t, rec.path, NodeRetrieve, "intent none skips retrieval")
}

func TestQueryRunFailingToolStillAnswers(t *testing.T) {
	clients := inMemoryClients()
	clients.Tools = newScriptedTools(map[string]error{
		"send_email": errors.New("smtp unreachable"),
	})
	exe, err := Build(clients, Config{})
	require.NoError(t, err)

	s := domain.NewState("Create a task and send an email about it")
	require.NoError(t, exe.Run(context.Background(), s))

	require.Len(t, s.ToolResults, 2)
	assert.Contains(t, s.Answer, "Done: create_task.")
	assert.Contains(t, s.Answer, "I couldn't complete send_email")
	require.Len(t, s.Errors, 1)
}

func TestFallbackInterpreterEquivalence(t *testing.T) {
	inputs := []string{
		"Remember that I prefer async standups",
		"note that the family trip is in june",
		"What did I say about standups?",
		"Create a task to buy milk",
		"how does the trip relate to the budget",
	}

	run := func(opts ...graph.Option) []*domain.State {
		exe, err := Build(inMemoryClients(), Config{}, opts...)
		require.NoError(t, err)

		var states []*domain.State
		for _, input := range inputs {
			s := domain.NewState(input)
			require.NoError(t, exe.Run(context.Background(), s))
			states = append(states, s)
		}
		return states
	}

	compiled := run()
	fallback := run(graph.WithFallbackInterpreter())

	for i := range inputs {
		c, f := compiled[i], fallback[i]
		assert.Equal(t, c.InteractionType, f.InteractionType, inputs[i])
		assert.Equal(t, c.Topic, f.Topic, inputs[i])
		assert.Equal(t, c.RetrievalIntent, f.RetrievalIntent, inputs[i])
		assert.Equal(t, c.Answer, f.Answer, inputs[i])
		assert.Equal(t, planNames(c.ToolPlan), planNames(f.ToolPlan), inputs[i])
		assert.Equal(t, c.Errors, f.Errors, inputs[i])
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	exe, err := Build(inMemoryClients(), Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := domain.NewState("What did I say about standups?")
	err = exe.Run(ctx, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Answer)
}
