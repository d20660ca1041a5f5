// Package redis provides a MemoryStore backed by Redis, for deployments
// where remembered entries must survive process restarts.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	inmem "github.com/daneel-ai/daneel/pkg/adapters/memory"
	"github.com/daneel-ai/daneel/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.MemoryStore using Redis. Entries are stored as
// JSON values and indexed per topic in a ZSET scored by strength, so
// reads come back strongest first without client-side sorting.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored entries.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for entries.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "daneel:memory:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(id string) string {
	return s.prefix + "entry:" + id
}

func (s *Store) indexKey(topic string) string {
	if topic == "" {
		topic = "general"
	}
	return s.prefix + "topic:" + topic
}

func (s *Store) allKey() string {
	return s.prefix + "all"
}

// Write persists entries and updates the topic indexes.
func (s *Store) Write(ctx context.Context, entries ...domain.Entry) error {
	pipe := s.client.Pipeline()

	for _, e := range entries {
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now().UTC()
		}
		if e.Strength == 0 {
			e.Strength = 1.0
		}

		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal entry %s: %w", e.ID, err)
		}

		member := backend.Z{Score: e.Strength, Member: e.ID}
		pipe.Set(ctx, s.key(e.ID), data, s.ttl)
		pipe.ZAdd(ctx, s.indexKey(e.Topic), member)
		pipe.ZAdd(ctx, s.allKey(), member)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write to redis: %w", err)
	}
	return nil
}

// Read returns matching entries, strongest first. The topic index gives
// the ordering; content matching happens client side with the same
// predicate the in-memory store uses.
func (s *Store) Read(ctx context.Context, query domain.MemoryQuery) ([]domain.Entry, error) {
	index := s.allKey()
	if query.Topic != "" {
		index = s.indexKey(query.Topic)
	}

	ids, err := s.client.ZRevRange(ctx, index, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	var hits []domain.Entry
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // expired entry still present in the index
		}

		var e domain.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
		}
		if !inmem.Matches(query.Text, e.Content) {
			continue
		}

		hits = append(hits, e)
		if query.Limit > 0 && len(hits) >= query.Limit {
			break
		}
	}
	return hits, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
