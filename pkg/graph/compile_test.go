package graph

import (
	"context"
	"testing"

	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(_ context.Context, _ *domain.State) (Result, error) {
	return Continue(), nil
}

func TestCompile_ValidLinearGraph(t *testing.T) {
	b := NewBuilder("linear")
	b.Add("start").Run(noop).Go("end")
	b.Add("end").Run(noop).Terminal()

	exe, err := Compile(b.Definition())
	require.NoError(t, err)
	require.NotNil(t, exe)
}

func TestCompile_BranchToUnknownNode(t *testing.T) {
	b := NewBuilder("broken")
	b.Add("start").Run(noop).
		Branch("yes", "end").
		Branch("no", "missing")
	b.Add("end").Run(noop).Terminal()

	exe, err := Compile(b.Definition())
	assert.Nil(t, exe, "a malformed graph must not produce an executable")
	require.Error(t, err)

	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.ErrorIs(t, err, ErrDefinition)
	assert.Contains(t, defErr.Error(), `branch "no" to unknown node "missing"`)
}

func TestCompile_UnreachableNode(t *testing.T) {
	b := NewBuilder("island")
	b.Add("start").Run(noop).Go("end")
	b.Add("end").Run(noop).Terminal()
	b.Add("orphan").Run(noop).Go("end")

	_, err := Compile(b.Definition())
	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Contains(t, defErr.Error(), `node "orphan" is unreachable`)
}

func TestCompile_CycleRejected(t *testing.T) {
	b := NewBuilder("loop")
	b.Add("a").Run(noop).Go("b")
	b.Add("b").Run(noop).Go("a")
	b.Add("end").Run(noop).Terminal()
	// end is unreachable too, but the cycle alone must already fail.

	_, err := Compile(b.Definition())
	require.ErrorIs(t, err, ErrDefinition)
	assert.Contains(t, err.Error(), "cycle detected")
}

func TestCompile_DeadEndRejected(t *testing.T) {
	b := NewBuilder("deadend")
	b.Add("start").Run(noop).Go("stuck")
	b.Add("stuck").Run(noop) // no edges, not terminal
	b.Add("end").Run(noop).Terminal()
	b.Entry("start")

	_, err := Compile(b.Definition())
	require.ErrorIs(t, err, ErrDefinition)
	assert.Contains(t, err.Error(), `node "stuck" is a dead end`)
}

func TestCompile_MissingStepFunction(t *testing.T) {
	b := NewBuilder("nofn")
	b.Add("start").Go("end")
	b.Add("end").Run(noop).Terminal()

	_, err := Compile(b.Definition())
	require.ErrorIs(t, err, ErrDefinition)
	assert.Contains(t, err.Error(), `node "start" has no step function`)
}

func TestCompile_TerminalWithOutgoingEdge(t *testing.T) {
	b := NewBuilder("overrun")
	b.Add("start").Run(noop).Go("end")
	b.Add("end").Run(noop).Terminal().Go("after")
	b.Add("after").Run(noop).Terminal()

	_, err := Compile(b.Definition())
	require.ErrorIs(t, err, ErrDefinition)
	assert.Contains(t, err.Error(), `terminal node "end" has outgoing edges`)
}

func TestCompile_NoTerminalNode(t *testing.T) {
	b := NewBuilder("endless")
	b.Add("start").Run(noop).Go("next")
	b.Add("next").Run(noop).Go("start")

	_, err := Compile(b.Definition())
	require.ErrorIs(t, err, ErrDefinition)
	assert.Contains(t, err.Error(), "no terminal node")
}

func TestDefinition_NodesEntryFirst(t *testing.T) {
	b := NewBuilder("views")
	b.Add("zeta").Run(noop).Go("alpha")
	b.Add("alpha").Run(noop).Terminal()
	b.Entry("zeta")

	views := b.Definition().Nodes()
	require.Len(t, views, 2)
	assert.Equal(t, "zeta", views[0].ID)
	assert.True(t, views[0].Entry)
	assert.Equal(t, "alpha", views[1].ID)
	assert.True(t, views[1].Terminal)
}
