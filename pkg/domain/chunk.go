package domain

import "sort"

// Chunk is a single retrieval result from any store.
type Chunk struct {
	ID       string         `json:"id"`
	Source   string         `json:"source"` // "memory", "retrieval_store" or "graph"
	Text     string         `json:"text"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SortChunks orders chunks by descending score.
// The sort is stable: ties keep the original store order.
func SortChunks(chunks []Chunk) {
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].Score > chunks[j].Score
	})
}
