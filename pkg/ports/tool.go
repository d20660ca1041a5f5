package ports

import (
	"context"

	"github.com/daneel-ai/daneel/pkg/domain"
)

// ToolInvoker executes named side-effects on behalf of the engine.
// Invocations within one run are issued strictly in plan order; the
// engine never calls Invoke concurrently for the same run.
type ToolInvoker interface {
	// Invoke runs the named tool. It returns domain.ErrToolNotFound
	// (wrapped) when the name is not registered.
	Invoke(ctx context.Context, name string, args map[string]any) (domain.ToolOutcome, error)

	// ListTools describes the registered tools.
	ListTools() []domain.ToolDescriptor
}
