package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/daneel-ai/daneel"
	mcpadapter "github.com/daneel-ai/daneel/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the assistant as an MCP Server, exposing the action tools
and an 'ask' tool to MCP-capable agents.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		assistant, err := buildAssistant(cmd, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize assistant: %w", err)
		}

		srv := mcpadapter.NewServer(assistant.Tools(), daneel.Version,
			mcpadapter.WithAnswerer(assistant.Ask),
			mcpadapter.WithGraphResource(assistant.Definition()),
		)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting MCP Server (stdio)")
			return srv.ServeStdio()
		case "sse":
			logger.Info("Starting MCP Server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ServeSSE(ctx, port)
		default:
			return fmt.Errorf("unknown transport: %s", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport to use (stdio or sse)")
	mcpCmd.Flags().IntP("port", "p", 8090, "Port for the SSE transport")
}
