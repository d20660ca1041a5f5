/*
Package graph implements the node-graph execution engine at the heart of Daneel.

A graph is a directed, conditionally branching workflow over a single
*domain.State. Nodes are plain functions; branching nodes return an edge
label which the runner dispatches through a table declared at build time.
Branch decisions are never inferred from state alone: they stay colocated
with the node that made them, which keeps control flow a verifiable data
structure.

# Building and running

	b := graph.NewBuilder("reasoning")
	b.Add("classify").Run(classify).
		Branch("ingestion", "store").
		Branch("query", "answer")
	b.Add("store").Run(store).Terminal()
	b.Add("answer").Run(answer).Terminal()
	b.Entry("classify")

	exe, err := graph.Compile(b.Definition())
	if err != nil { ... }
	err = exe.Run(ctx, state)

Compilation validates the definition (unknown targets, unreachable nodes,
cycles, dead ends) and fails with *DefinitionError; a malformed graph is
never runnable.

# Runners

Two interchangeable runners sit behind Executable: the default compiled
chain, which resolves every edge to a node pointer at compile time, and a
fallback interpreter, which walks the declared definition with an explicit
label dispatch table. They are behaviorally identical; the fallback exists
so the engine can run without the precompiled form and is exercised by the
equivalence tests. Select it with WithFallbackInterpreter.
*/
package graph
