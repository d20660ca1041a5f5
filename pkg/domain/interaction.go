package domain

// InteractionType classifies what the user wants from this interaction.
type InteractionType string

const (
	// InteractionUnknown is the zero value before classification runs.
	InteractionUnknown InteractionType = ""
	// InteractionIngestion stores new information; no answer is produced.
	InteractionIngestion InteractionType = "ingestion"
	// InteractionQuery answers a question, possibly using retrieval and tools.
	InteractionQuery InteractionType = "query"
)

// ParseInteractionType maps a wire value to an InteractionType.
// Unrecognized values resolve to InteractionUnknown so the classifier
// can decide (it fails closed to query).
func ParseInteractionType(s string) InteractionType {
	switch InteractionType(s) {
	case InteractionIngestion:
		return InteractionIngestion
	case InteractionQuery:
		return InteractionQuery
	default:
		return InteractionUnknown
	}
}

// RetrievalIntent selects which capability client the retrieval step queries.
type RetrievalIntent string

const (
	IntentNone           RetrievalIntent = "none"
	IntentMemory         RetrievalIntent = "memory"
	IntentRetrievalStore RetrievalIntent = "retrieval_store"
	IntentGraph          RetrievalIntent = "graph"
)

// IngestionType categorizes stored content for downstream indexing.
type IngestionType string

const (
	IngestionNote       IngestionType = "note"
	IngestionTask       IngestionType = "task"
	IngestionTranscript IngestionType = "transcript"
	IngestionContact    IngestionType = "contact"
)
