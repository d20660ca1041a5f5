package graph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDefinition is the sentinel wrapped by every DefinitionError.
var ErrDefinition = errors.New("invalid graph definition")

// DefinitionError reports all structural problems found at compile time.
// A graph that produces one is never compiled into an Executable.
type DefinitionError struct {
	Graph  string
	Issues []string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("graph %q: %s", e.Graph, strings.Join(e.Issues, "; "))
}

func (e *DefinitionError) Unwrap() error { return ErrDefinition }

// ExecutionError reports a fatal runtime failure, naming the node that caused it.
type ExecutionError struct {
	Graph  string
	NodeID string
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("graph %q: node %q: %v", e.Graph, e.NodeID, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
