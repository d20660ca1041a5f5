// Package flow defines the assistant's step functions and assembles them
// into the ingestion and reasoning subgraphs executed by pkg/graph.
package flow

import (
	"io"
	"log/slog"

	"github.com/daneel-ai/daneel/pkg/ports"
)

// Node IDs, exported for introspection and tests.
const (
	NodeClassifyInteraction = "classify_interaction"
	NodeNormalizeInput      = "normalize_input"
	NodeDetectIngestion     = "detect_ingestion_type"
	NodeTransformStorage    = "transform_for_storage"
	NodeWriteMemory         = "write_memory"
	NodeWriteRetrieval      = "write_retrieval"
	NodeWriteGraph          = "write_graph"
	NodeFinishIngestion     = "finish_ingestion"
	NodeClassifyTopic       = "classify_topic"
	NodeRouteRetrieval      = "route_retrieval"
	NodeRetrieve            = "retrieve"
	NodeRerank              = "rerank"
	NodePlanTools           = "plan_tools"
	NodeRunTools            = "run_tools"
	NodeIngestToolResults   = "ingest_tool_results"
	NodeGenerateAnswer      = "generate_answer"
)

// Branch labels returned by the tool planner.
const (
	labelHasTools = "has_tools"
	labelNoTools  = "no_tools"
)

// DefaultTopics is the built-in topic taxonomy.
var DefaultTopics = []string{"work", "projects", "family", "personal_admin"}

// DefaultTopK bounds retrieval results per store.
const DefaultTopK = 5

// Clients bundles the capability set injected into every node.
// The flow depends only on the port contracts; which implementation is
// bound (in-memory, HTTP, Redis) is a construction-time decision.
type Clients struct {
	Memory    ports.MemoryStore
	Retrieval ports.RetrievalStore
	Graph     ports.GraphStore
	Tools     ports.ToolInvoker
}

// Config tunes classification and retrieval behavior.
type Config struct {
	Topics []string
	TopK   int
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if len(c.Topics) == 0 {
		c.Topics = DefaultTopics
	}
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// nodes holds the capability set and config shared by all step functions.
type nodes struct {
	clients Clients
	topics  []string
	topK    int
	logger  *slog.Logger
}

func newNodes(clients Clients, cfg Config) *nodes {
	cfg = cfg.withDefaults()
	return &nodes{
		clients: clients,
		topics:  cfg.Topics,
		topK:    cfg.TopK,
		logger:  cfg.Logger,
	}
}
