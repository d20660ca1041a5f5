// Package mcp exposes the assistant and its tool registry over the Model
// Context Protocol, so MCP-capable clients can call the action tools and
// ask questions directly.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/daneel-ai/daneel/pkg/ports"
	mcpapi "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AnswerFunc runs one full assistant interaction and returns the answer.
type AnswerFunc func(ctx context.Context, input string) (string, error)

// Server exposes the tool registry (and optionally the assistant itself)
// as an MCP server.
type Server struct {
	tools     ports.ToolInvoker
	mcpServer *server.MCPServer
}

type ServerOption func(*Server)

// WithAnswerer registers an "ask" tool that runs a full assistant
// interaction.
func WithAnswerer(fn AnswerFunc) ServerOption {
	return func(s *Server) {
		askTool := mcpapi.NewTool("ask",
			mcpapi.WithDescription("Ask the assistant a question or hand it something to remember."),
			mcpapi.WithString("input", mcpapi.Required(), mcpapi.Description("The user utterance")),
		)
		s.mcpServer.AddTool(askTool, func(ctx context.Context, request mcpapi.CallToolRequest) (*mcpapi.CallToolResult, error) {
			input, ok := request.GetArguments()["input"].(string)
			if !ok || input == "" {
				return mcpapi.NewToolResultError("input is required"), nil
			}

			answer, err := fn(ctx, input)
			if err != nil {
				return mcpapi.NewToolResultError(fmt.Sprintf("ask failed: %v", err)), nil
			}
			return mcpapi.NewToolResultText(answer), nil
		})
	}
}

// WithGraphResource exposes the graph definition for introspection.
func WithGraphResource(def *graph.Definition) ServerOption {
	return func(s *Server) {
		s.mcpServer.AddResource(mcpapi.NewResource("daneel://graph", "Assistant Graph Definition",
			mcpapi.WithMIMEType("application/json"),
		), func(ctx context.Context, request mcpapi.ReadResourceRequest) ([]mcpapi.ResourceContents, error) {
			jsonBytes, err := json.Marshal(def.Nodes())
			if err != nil {
				return nil, fmt.Errorf("failed to marshal graph: %w", err)
			}

			return []mcpapi.ResourceContents{
				mcpapi.TextResourceContents{
					URI:      "daneel://graph",
					MIMEType: "application/json",
					Text:     string(jsonBytes),
				},
			}, nil
		})
	}
}

// NewServer creates a new MCP Server instance exposing every registered
// tool by name.
func NewServer(tools ports.ToolInvoker, version string, opts ...ServerOption) *Server {
	s := &Server{
		tools:     tools,
		mcpServer: server.NewMCPServer("daneel-mcp", version),
	}
	s.registerTools()

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	for _, desc := range s.tools.ListTools() {
		tool := mcpapi.NewTool(desc.Name,
			mcpapi.WithDescription(desc.Description),
		)

		name := desc.Name
		s.mcpServer.AddTool(tool, func(ctx context.Context, request mcpapi.CallToolRequest) (*mcpapi.CallToolResult, error) {
			outcome, err := s.tools.Invoke(ctx, name, request.GetArguments())
			if err != nil {
				return mcpapi.NewToolResultError(fmt.Sprintf("%s failed: %v", name, err)), nil
			}

			jsonBytes, err := json.Marshal(outcome.Result)
			if err != nil {
				return mcpapi.NewToolResultError(fmt.Sprintf("%s result not serializable: %v", name, err)), nil
			}
			return mcpapi.NewToolResultText(string(jsonBytes)), nil
		})
	}
}
