package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/daneel-ai/daneel"
	httpadapter "github.com/daneel-ai/daneel/internal/adapters/http"
	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/daneel-ai/daneel/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assistant HTTP server",
	Long:  `Starts the assistant in server mode, exposing a JSON API over HTTP with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		port := cfg.HTTP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		registry := prometheus.NewRegistry()
		metrics := observability.NewMetrics(registry)

		assistant, err := buildAssistant(cmd, cfg, logger,
			daneel.WithGraphOptions(graph.WithHooks(metrics.Hooks())))
		if err != nil {
			return fmt.Errorf("failed to initialize assistant: %w", err)
		}

		handler := httpadapter.NewHandler(assistant,
			httpadapter.WithLogger(logger),
			httpadapter.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return httpadapter.Serve(ctx, fmt.Sprintf(":%d", port), handler, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
