package daneel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daneel-ai/daneel/internal/flow"
	"github.com/daneel-ai/daneel/internal/logging"
	inmem "github.com/daneel-ai/daneel/pkg/adapters/memory"
	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/daneel-ai/daneel/pkg/ports"
	"github.com/daneel-ai/daneel/pkg/tooling"
)

// Version is the library version, injected at build time for releases.
var Version = "0.1.0-dev"

// Request is one user interaction handed to the Assistant.
type Request struct {
	// RawInput is the user utterance.
	RawInput string `json:"raw_input"`

	// InteractionType optionally forces the interaction classification.
	// When set, the classifier respects it instead of deciding.
	InteractionType domain.InteractionType `json:"interaction_type,omitempty"`
}

// Response is the outcome of one fully executed interaction.
type Response struct {
	Answer          string                 `json:"answer,omitempty"`
	InteractionType domain.InteractionType `json:"interaction_type"`
	Topic           string                 `json:"topic,omitempty"`
	RetrievalIntent domain.RetrievalIntent `json:"retrieval_intent,omitempty"`
	UsedChunks      []domain.Chunk         `json:"used_chunks,omitempty"`
	ToolResults     []domain.ToolOutcome   `json:"tool_results,omitempty"`
	Errors          []string               `json:"errors,omitempty"`
}

// Assistant is the high-level entry point for the library. It wraps the
// compiled interaction graph and the bound capability set. An Assistant
// is safe for concurrent use; every Handle call runs on its own state.
type Assistant struct {
	exe     *graph.Executable
	clients flow.Clients
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Assistant.
type Option func(*settings)

type settings struct {
	memory    ports.MemoryStore
	retrieval ports.RetrievalStore
	graph     ports.GraphStore
	tools     ports.ToolInvoker
	topics    []string
	topK      int
	logger    *slog.Logger
	graphOpts []graph.Option
}

// WithMemoryStore binds the memory capability.
func WithMemoryStore(s ports.MemoryStore) Option {
	return func(cfg *settings) {
		cfg.memory = s
	}
}

// WithRetrievalStore binds the retrieval store capability.
func WithRetrievalStore(s ports.RetrievalStore) Option {
	return func(cfg *settings) {
		cfg.retrieval = s
	}
}

// WithGraphStore binds the graph store capability.
func WithGraphStore(s ports.GraphStore) Option {
	return func(cfg *settings) {
		cfg.graph = s
	}
}

// WithToolInvoker binds the tool registry.
func WithToolInvoker(t ports.ToolInvoker) Option {
	return func(cfg *settings) {
		cfg.tools = t
	}
}

// WithTopics replaces the built-in topic taxonomy.
func WithTopics(topics ...string) Option {
	return func(cfg *settings) {
		cfg.topics = topics
	}
}

// WithTopK bounds retrieval results per store.
func WithTopK(k int) Option {
	return func(cfg *settings) {
		cfg.topK = k
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *settings) {
		cfg.logger = logger
	}
}

// WithGraphOptions passes options through to the graph executor, e.g.
// graph.WithHooks for metrics or graph.WithFallbackInterpreter.
func WithGraphOptions(opts ...graph.Option) Option {
	return func(cfg *settings) {
		cfg.graphOpts = append(cfg.graphOpts, opts...)
	}
}

// New initializes an Assistant. Capabilities not bound via options fall
// back to the deterministic in-memory implementations and the built-in
// tool registry.
func New(opts ...Option) (*Assistant, error) {
	cfg := &settings{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.memory == nil {
		cfg.memory = inmem.NewStore()
	}
	if cfg.retrieval == nil {
		cfg.retrieval = inmem.NewRetrieval()
	}
	if cfg.graph == nil {
		cfg.graph = inmem.NewGraph()
	}
	if cfg.tools == nil {
		cfg.tools = tooling.Builtins()
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	clients := flow.Clients{
		Memory:    cfg.memory,
		Retrieval: cfg.retrieval,
		Graph:     cfg.graph,
		Tools:     cfg.tools,
	}

	graphOpts := append([]graph.Option{graph.WithLogger(cfg.logger)}, cfg.graphOpts...)
	exe, err := flow.Build(clients, flow.Config{
		Topics: cfg.topics,
		TopK:   cfg.topK,
		Logger: cfg.logger,
	}, graphOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build assistant graph: %w", err)
	}

	return &Assistant{exe: exe, clients: clients, logger: cfg.logger}, nil
}

// Definition exposes the compiled graph for introspection and rendering.
func (a *Assistant) Definition() *graph.Definition {
	return a.exe.Definition()
}

// Tools exposes the bound tool registry.
func (a *Assistant) Tools() ports.ToolInvoker {
	return a.clients.Tools
}

// Handle runs one interaction to completion and maps the final state to
// a Response. The error is non-nil only for fatal failures (a node
// error or cancellation); degraded capabilities and failed tools are
// reported through Response.Errors instead.
func (a *Assistant) Handle(ctx context.Context, req Request) (Response, error) {
	s := domain.NewState(req.RawInput)
	// Unrecognized values fall back to Unknown so the classifier decides.
	s.InteractionType = domain.ParseInteractionType(string(req.InteractionType))

	if err := a.exe.Run(ctx, s); err != nil {
		return Response{}, err
	}

	return Response{
		Answer:          s.Answer,
		InteractionType: s.InteractionType,
		Topic:           s.Topic,
		RetrievalIntent: s.RetrievalIntent,
		UsedChunks:      s.RetrievedChunks,
		ToolResults:     s.ToolResults,
		Errors:          s.Errors,
	}, nil
}

// Ask is a convenience wrapper for plain question answering.
func (a *Assistant) Ask(ctx context.Context, input string) (string, error) {
	resp, err := a.Handle(ctx, Request{RawInput: input})
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}
