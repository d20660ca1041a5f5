package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/daneel-ai/daneel/pkg/adapters/redis"
	"github.com/daneel-ai/daneel/pkg/domain"
	contract "github.com/daneel-ai/daneel/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) *redis.Store {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisStore_Contract(t *testing.T) {
	store := newTestStore(t)
	contract.RunMemoryStoreContract(t, store)
}

func TestRedisStore_Options(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, redis.WithPrefix("custom:"), redis.WithTTL(time.Hour))

	require.NoError(t, store.Write(ctx, domain.Entry{
		ID:      "opt-1",
		Topic:   "work",
		Kind:    "note",
		Content: "release checklist for friday",
	}))

	hits, err := store.Read(ctx, domain.MemoryQuery{Text: "release", Topic: "work", Limit: 5})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "opt-1", hits[0].ID)
	assert.InDelta(t, 1.0, hits[0].Strength, 1e-9, "strength defaults when unset")
}

func TestRedisStore_ReadWithoutTopicUsesAllIndex(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Write(ctx,
		domain.Entry{ID: "a", Topic: "work", Kind: "note", Content: "budget review notes", Strength: 0.3},
		domain.Entry{ID: "b", Topic: "family", Kind: "note", Content: "budget for the trip", Strength: 0.9},
	))

	hits, err := store.Read(ctx, domain.MemoryQuery{Text: "budget", Limit: 5})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "b", hits[0].ID, "stronger entry must come first across topics")
}
