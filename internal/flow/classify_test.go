package flow

import (
	"context"
	"testing"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyInteraction(t *testing.T) {
	n := newNodes(inMemoryClients(), Config{})
	ctx := context.Background()

	cases := []struct {
		name  string
		input string
		want  domain.InteractionType
	}{
		{"remember marker", "Remember that I prefer async standups", domain.InteractionIngestion},
		{"note marker", "note that the deploy is friday", domain.InteractionIngestion},
		{"save marker", "save this: door code 4921", domain.InteractionIngestion},
		{"question", "What did I say about standups?", domain.InteractionQuery},
		{"imperative", "Create a task to buy milk", domain.InteractionQuery},
		{"ambiguous defaults to query", "blue", domain.InteractionQuery},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := domain.NewState(tc.input)
			res, err := n.classifyInteraction(ctx, s)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.InteractionType)
			assert.Equal(t, string(tc.want), res.Label(), "branch label mirrors the classification")
		})
	}
}

func TestClassifyInteraction_CallerOverrideWins(t *testing.T) {
	n := newNodes(inMemoryClients(), Config{})

	s := domain.NewState("Remember that I prefer async standups")
	s.InteractionType = domain.InteractionQuery

	res, err := n.classifyInteraction(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, domain.InteractionQuery, s.InteractionType)
	assert.Equal(t, string(domain.InteractionQuery), res.Label())
}

func TestClassifyTopic_Taxonomy(t *testing.T) {
	n := newNodes(inMemoryClients(), Config{})
	ctx := context.Background()

	s := domain.NewState("what is the family plan for saturday")
	_, err := n.classifyTopic(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "family", s.Topic)
}

func TestClassifyTopic_AdoptsTopicFromMemory(t *testing.T) {
	clients := inMemoryClients()
	require.NoError(t, clients.Memory.Write(context.Background(), domain.Entry{
		ID:       "1",
		Topic:    "projects",
		Kind:     "note",
		Content:  "the roadmap review happens monthly",
		Strength: 1.0,
	}))

	n := newNodes(clients, Config{})
	s := domain.NewState("when is the next roadmap review")
	_, err := n.classifyTopic(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "projects", s.Topic)
}

func TestClassifyTopic_MemoryFailureFallsBack(t *testing.T) {
	clients := inMemoryClients()
	clients.Memory = failingMemory{}

	n := newNodes(clients, Config{})
	s := domain.NewState("when is the next roadmap review")
	_, err := n.classifyTopic(context.Background(), s)
	require.NoError(t, err, "a degraded memory store must not abort the run")
	assert.Equal(t, "general", s.Topic)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0], "capability unavailable")
}

func TestClassifyTopic_CustomTaxonomy(t *testing.T) {
	n := newNodes(inMemoryClients(), Config{Topics: []string{"gardening"}})

	s := domain.NewState("what gardening chores are left")
	_, err := n.classifyTopic(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "gardening", s.Topic)
}
