/*
Package daneel is a personal assistant engine built around a validated
node graph. Every interaction runs the same compiled graph: the input is
classified as ingestion or query, routed through the matching subgraph,
and either persisted to the memory capabilities or answered from what
they return.

The high-level entry point is the Assistant:

	assistant, err := daneel.New()
	if err != nil {
		log.Fatal(err)
	}
	resp, err := assistant.Handle(ctx, daneel.Request{RawInput: "What did I say about standups?"})

By default the Assistant binds deterministic in-memory capabilities and
the built-in action tools. Production deployments inject HTTP or Redis
backed stores with the With* options.
*/
package daneel
