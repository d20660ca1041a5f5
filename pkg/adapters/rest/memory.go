package rest

import (
	"context"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// Memory implements ports.MemoryStore against the memory service HTTP API.
type Memory struct {
	c *client
}

// NewMemory creates a memory service client for the given base URL.
func NewMemory(baseURL string, opts ...Option) *Memory {
	return &Memory{c: newClient("memory", baseURL, opts...)}
}

// Write sends entries to POST /entries.
func (m *Memory) Write(ctx context.Context, entries ...domain.Entry) error {
	payload := struct {
		Entries []domain.Entry `json:"entries"`
	}{Entries: entries}
	return m.c.post(ctx, "/entries", payload, nil)
}

// Read queries POST /entries/search.
func (m *Memory) Read(ctx context.Context, query domain.MemoryQuery) ([]domain.Entry, error) {
	payload := struct {
		Text  string `json:"text"`
		Topic string `json:"topic,omitempty"`
		Limit int    `json:"limit,omitempty"`
	}{Text: query.Text, Topic: query.Topic, Limit: query.Limit}

	var result struct {
		Entries []domain.Entry `json:"entries"`
	}
	if err := m.c.post(ctx, "/entries/search", payload, &result); err != nil {
		return nil, err
	}
	return result.Entries, nil
}
