package domain

// State represents the shared record threaded through one assistant run.
//
// It is owned exclusively by one in-flight run: every request allocates a
// fresh instance, each node mutates only the fields it owns, and the
// instance is discarded once the response is extracted. Cross-request
// memory lives behind ports.MemoryStore, never here.
type State struct {
	// RawInput is the user's message, set once at construction.
	RawInput string `json:"raw_input"`

	// InteractionType is set exactly once by the interaction classifier.
	InteractionType InteractionType `json:"interaction_type"`

	// IngestionType is set on the ingestion path only.
	IngestionType IngestionType `json:"ingestion_type,omitempty"`

	// Topic is the classified label; empty until the topic classifier runs.
	Topic string `json:"topic,omitempty"`

	// RetrievalIntent is decided by the router before any retrieval executes.
	RetrievalIntent RetrievalIntent `json:"retrieval_intent,omitempty"`

	// RetrievedChunks holds retrieval results, insertion order = relevance order.
	RetrievedChunks []Chunk `json:"retrieved_chunks,omitempty"`

	// ToolPlan and ToolResults are parallel sequences; results never outgrow the plan.
	ToolPlan    []ToolCall    `json:"tool_plan,omitempty"`
	ToolResults []ToolOutcome `json:"tool_results,omitempty"`

	// Answer is written by the terminal node of the reasoning flow.
	Answer string `json:"answer,omitempty"`

	// Errors accumulates non-fatal failures for observability, not control flow.
	Errors []string `json:"errors,omitempty"`

	// Metadata carries storage annotations produced on the ingestion path.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewState creates a fresh state for a single run.
func NewState(rawInput string) *State {
	return &State{RawInput: rawInput}
}

// RecordError appends a non-fatal failure. The run continues; the caller
// sees the accumulated list in the response.
func (s *State) RecordError(err error) {
	if err == nil {
		return
	}
	s.Errors = append(s.Errors, err.Error())
}
