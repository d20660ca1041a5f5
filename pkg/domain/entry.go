package domain

import "time"

// Entry is a single record in the memory store.
type Entry struct {
	ID        string         `json:"id"`
	Topic     string         `json:"topic"`
	Kind      string         `json:"kind"` // ingestion type or "tool_result"
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Strength  float64        `json:"strength"`
}

// MemoryQuery selects entries from the memory store.
type MemoryQuery struct {
	Text  string `json:"text"`
	Topic string `json:"topic,omitempty"` // empty matches all topics
	Limit int    `json:"limit,omitempty"`
}
