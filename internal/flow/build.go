package flow

import (
	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/graph"
)

// Build assembles the full assistant graph: the interaction classifier
// at the entry, the ingestion subgraph, and the reasoning subgraph.
// Graph options (hooks, logger, fallback interpreter) pass through to
// the executor.
func Build(clients Clients, cfg Config, opts ...graph.Option) (*graph.Executable, error) {
	n := newNodes(clients, cfg)

	b := graph.NewBuilder("assistant")

	b.Add(NodeClassifyInteraction).Run(n.classifyInteraction).
		Branch(string(domain.InteractionIngestion), NodeNormalizeInput).
		Branch(string(domain.InteractionQuery), NodeClassifyTopic)

	// Ingestion flow: persist the interaction, no answer produced.
	b.Add(NodeNormalizeInput).Run(n.normalizeInput).Go(NodeDetectIngestion)
	b.Add(NodeDetectIngestion).Run(n.detectIngestionType).Go(NodeTransformStorage)
	b.Add(NodeTransformStorage).Run(n.transformForStorage).Go(NodeWriteMemory)
	b.Add(NodeWriteMemory).Run(n.writeMemory).Go(NodeWriteRetrieval)
	b.Add(NodeWriteRetrieval).Run(n.writeRetrieval).Go(NodeWriteGraph)
	b.Add(NodeWriteGraph).Run(n.writeGraph).Go(NodeFinishIngestion)
	b.Add(NodeFinishIngestion).Run(n.finishIngestion).Terminal()

	// Reasoning flow: classify, retrieve, act, answer.
	b.Add(NodeClassifyTopic).Run(n.classifyTopic).Go(NodeRouteRetrieval)
	b.Add(NodeRouteRetrieval).Run(n.routeRetrieval).
		Branch(string(domain.IntentNone), NodePlanTools).
		Branch(string(domain.IntentMemory), NodeRetrieve).
		Branch(string(domain.IntentRetrievalStore), NodeRetrieve).
		Branch(string(domain.IntentGraph), NodeRetrieve)
	b.Add(NodeRetrieve).Run(n.retrieve).Go(NodeRerank)
	b.Add(NodeRerank).Run(n.rerank).Go(NodePlanTools)
	b.Add(NodePlanTools).Run(n.planTools).
		Branch(labelHasTools, NodeRunTools).
		Branch(labelNoTools, NodeGenerateAnswer)
	b.Add(NodeRunTools).Run(n.runTools).Go(NodeIngestToolResults)
	b.Add(NodeIngestToolResults).Run(n.ingestToolResults).Go(NodeGenerateAnswer)
	b.Add(NodeGenerateAnswer).Run(n.generateAnswer).Terminal()

	b.Entry(NodeClassifyInteraction)

	return graph.Compile(b.Definition(), opts...)
}
