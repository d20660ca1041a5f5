package ports

import (
	"context"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// MemoryStore persists and recalls user memory entries.
// Implementations must be safe for concurrent use by independent runs;
// connection pooling and locking are the implementation's responsibility.
type MemoryStore interface {
	// Write persists entries. A failed write is non-fatal to a run but
	// must be surfaced to the caller through State.Errors.
	Write(ctx context.Context, entries ...domain.Entry) error

	// Read returns entries matching the query, ordered by descending strength.
	Read(ctx context.Context, query domain.MemoryQuery) ([]domain.Entry, error)
}
