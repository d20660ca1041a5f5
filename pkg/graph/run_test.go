package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branchingDefinition builds a small graph that records its path in
// state metadata and branches on the raw input.
func branchingDefinition() *Definition {
	mark := func(name string) NodeFunc {
		return func(_ context.Context, s *domain.State) (Result, error) {
			if s.Metadata == nil {
				s.Metadata = make(map[string]any)
			}
			visited, _ := s.Metadata["visited"].([]string)
			s.Metadata["visited"] = append(visited, name)
			return Continue(), nil
		}
	}

	b := NewBuilder("branching")
	b.Add("decide").Run(func(_ context.Context, s *domain.State) (Result, error) {
		if s.RawInput == "left" {
			return Branch("left"), nil
		}
		return Branch("right"), nil
	}).
		Branch("left", "left_step").
		Branch("right", "right_step")
	b.Add("left_step").Run(mark("left_step")).Go("end")
	b.Add("right_step").Run(mark("right_step")).Go("end")
	b.Add("end").Run(mark("end")).Terminal()
	b.Entry("decide")
	return b.Definition()
}

func TestRun_BranchDispatch(t *testing.T) {
	exe, err := Compile(branchingDefinition())
	require.NoError(t, err)

	s := domain.NewState("left")
	require.NoError(t, exe.Run(context.Background(), s))
	assert.Equal(t, []string{"left_step", "end"}, s.Metadata["visited"])

	s = domain.NewState("anything-else")
	require.NoError(t, exe.Run(context.Background(), s))
	assert.Equal(t, []string{"right_step", "end"}, s.Metadata["visited"])
}

func TestRun_FallbackInterpreterEquivalence(t *testing.T) {
	for _, input := range []string{"left", "right"} {
		compiled, err := Compile(branchingDefinition())
		require.NoError(t, err)
		fallback, err := Compile(branchingDefinition(), WithFallbackInterpreter())
		require.NoError(t, err)

		s1 := domain.NewState(input)
		s2 := domain.NewState(input)
		require.NoError(t, compiled.Run(context.Background(), s1))
		require.NoError(t, fallback.Run(context.Background(), s2))

		assert.Equal(t, s1, s2, "both interpreters must produce identical final state for input %q", input)
	}
}

func TestRun_UndeclaredLabelFails(t *testing.T) {
	build := func() *Definition {
		b := NewBuilder("rogue")
		b.Add("decide").Run(func(_ context.Context, _ *domain.State) (Result, error) {
			return Branch("sideways"), nil
		}).
			Branch("left", "end").
			Branch("right", "end")
		b.Add("end").Run(noop).Terminal()
		return b.Definition()
	}

	for name, opts := range map[string][]Option{
		"compiled": nil,
		"fallback": {WithFallbackInterpreter()},
	} {
		t.Run(name, func(t *testing.T) {
			exe, err := Compile(build(), opts...)
			require.NoError(t, err)

			err = exe.Run(context.Background(), domain.NewState("x"))
			var execErr *ExecutionError
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, "decide", execErr.NodeID)
			assert.Contains(t, err.Error(), `undeclared branch label "sideways"`)
		})
	}
}

func TestRun_NodeErrorWrapsExecutionError(t *testing.T) {
	boom := errors.New("boom")
	b := NewBuilder("failing")
	b.Add("start").Run(func(_ context.Context, _ *domain.State) (Result, error) {
		return Continue(), boom
	}).Go("end")
	b.Add("end").Run(noop).Terminal()

	exe, err := Compile(b.Definition())
	require.NoError(t, err)

	err = exe.Run(context.Background(), domain.NewState("x"))
	require.ErrorIs(t, err, boom)
	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "start", execErr.NodeID)
}

func TestRun_CancelledBetweenNodes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var secondRan bool
	b := NewBuilder("cancel")
	b.Add("first").Run(func(_ context.Context, _ *domain.State) (Result, error) {
		cancel() // cooperative checkpoint fires before the next node launches
		return Continue(), nil
	}).Go("second")
	b.Add("second").Run(func(_ context.Context, _ *domain.State) (Result, error) {
		secondRan = true
		return Continue(), nil
	}).Go("end")
	b.Add("end").Run(noop).Terminal()

	exe, err := Compile(b.Definition())
	require.NoError(t, err)

	err = exe.Run(ctx, domain.NewState("x"))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, secondRan, "no node may launch after cancellation")
}

func TestRun_HooksObserveEveryNode(t *testing.T) {
	var entered, left []string
	var runPath []string

	hooks := Hooks{
		OnNodeEnter: func(_ context.Context, _ string, nodeID string) {
			entered = append(entered, nodeID)
		},
		OnNodeLeave: func(_ context.Context, ev NodeEvent) {
			left = append(left, ev.NodeID)
		},
		OnRunFinish: func(_ context.Context, ev RunEvent) {
			runPath = ev.Path
		},
	}

	exe, err := Compile(branchingDefinition(), WithHooks(hooks))
	require.NoError(t, err)
	require.NoError(t, exe.Run(context.Background(), domain.NewState("left")))

	want := []string{"decide", "left_step", "end"}
	assert.Equal(t, want, entered)
	assert.Equal(t, want, left)
	assert.Equal(t, want, runPath)
}

func TestRun_EachNodeRunsAtMostOnce(t *testing.T) {
	counts := make(map[string]int)
	count := func(name string, r Result) NodeFunc {
		return func(_ context.Context, _ *domain.State) (Result, error) {
			counts[name]++
			return r, nil
		}
	}

	b := NewBuilder("diamond")
	b.Add("top").Run(count("top", Branch("a"))).
		Branch("a", "mid_a").
		Branch("b", "mid_b")
	b.Add("mid_a").Run(count("mid_a", Continue())).Go("bottom")
	b.Add("mid_b").Run(count("mid_b", Continue())).Go("bottom")
	b.Add("bottom").Run(count("bottom", Continue())).Terminal()

	exe, err := Compile(b.Definition())
	require.NoError(t, err)
	require.NoError(t, exe.Run(context.Background(), domain.NewState("x")))

	for name, n := range counts {
		assert.Equal(t, 1, n, "node %s ran %d times", name, n)
	}
	assert.Zero(t, counts["mid_b"])
}
