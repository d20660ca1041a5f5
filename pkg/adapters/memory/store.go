package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// Store implements ports.MemoryStore in memory.
type Store struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

// NewStore creates an empty in-memory memory store.
func NewStore() *Store {
	return &Store{}
}

// Write appends entries, filling in defaults the way the real backend would.
func (s *Store) Write(_ context.Context, entries ...domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for _, e := range entries {
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		if e.Strength == 0 {
			e.Strength = 1.0
		}
		s.entries = append(s.entries, e)
	}
	return nil
}

// Read returns entries whose content matches the query, ordered by
// descending strength (stable), honoring the topic filter and limit.
func (s *Store) Read(_ context.Context, query domain.MemoryQuery) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []domain.Entry
	for _, e := range s.entries {
		if query.Topic != "" && e.Topic != query.Topic {
			continue
		}
		if !Matches(query.Text, e.Content) {
			continue
		}
		hits = append(hits, e)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Strength > hits[j].Strength
	})
	if query.Limit > 0 && len(hits) > query.Limit {
		hits = hits[:query.Limit]
	}
	return hits, nil
}

// Len reports the number of stored entries. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
