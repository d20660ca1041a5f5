package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/daneel-ai/daneel"
	"github.com/daneel-ai/daneel/internal/config"
	"github.com/daneel-ai/daneel/internal/logging"
	"github.com/daneel-ai/daneel/pkg/adapters/redis"
	"github.com/daneel-ai/daneel/pkg/adapters/rest"
	"github.com/daneel-ai/daneel/pkg/graph"
	"github.com/daneel-ai/daneel/pkg/tooling"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "daneel",
	Short: "Daneel is a personal assistant engine",
	Long: `Daneel runs every interaction through a validated node graph:
ingestion interactions are persisted to the memory capabilities, query
interactions are answered from retrieval, memory and the action tools.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("fallback-interpreter", false, "Run the graph with the fallback interpreter instead of the compiled chain")
}

// setup loads the configuration and builds the logger every command shares.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logging.New(logging.ParseLevel(cfg.Log.Level)), nil
}

// buildAssistant binds capabilities by configuration presence: Redis or
// HTTP backends when configured, in-memory stand-ins otherwise.
func buildAssistant(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, extra ...daneel.Option) (*daneel.Assistant, error) {
	opts := []daneel.Option{daneel.WithLogger(logger)}

	if len(cfg.Topics) > 0 {
		opts = append(opts, daneel.WithTopics(cfg.Topics...))
	}
	if cfg.TopK > 0 {
		opts = append(opts, daneel.WithTopK(cfg.TopK))
	}
	if len(cfg.Tools) > 0 {
		opts = append(opts, daneel.WithToolInvoker(tooling.Builtins().Subset(cfg.Tools...)))
	}

	switch {
	case cfg.Redis.Addr != "":
		logger.Info("binding memory store", "backend", "redis", "addr", cfg.Redis.Addr)
		opts = append(opts, daneel.WithMemoryStore(redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)))
	case cfg.Memory.Configured():
		logger.Info("binding memory store", "backend", "http", "url", cfg.Memory.URL)
		opts = append(opts, daneel.WithMemoryStore(rest.NewMemory(cfg.Memory.URL, backendOptions(cfg.Memory)...)))
	}

	if cfg.Retrieval.Configured() {
		logger.Info("binding retrieval store", "backend", "http", "url", cfg.Retrieval.URL)
		opts = append(opts, daneel.WithRetrievalStore(rest.NewRetrieval(cfg.Retrieval.URL, backendOptions(cfg.Retrieval)...)))
	}
	if cfg.Graph.Configured() {
		logger.Info("binding graph store", "backend", "http", "url", cfg.Graph.URL)
		opts = append(opts, daneel.WithGraphStore(rest.NewGraph(cfg.Graph.URL, backendOptions(cfg.Graph)...)))
	}

	if fallback, _ := cmd.Flags().GetBool("fallback-interpreter"); fallback {
		logger.Info("using fallback interpreter")
		opts = append(opts, daneel.WithGraphOptions(graph.WithFallbackInterpreter()))
	}

	opts = append(opts, extra...)
	return daneel.New(opts...)
}

func backendOptions(b config.Backend) []rest.Option {
	var opts []rest.Option
	if b.APIKey != "" {
		opts = append(opts, rest.WithAPIKey(b.APIKey))
	}
	if b.Timeout > 0 {
		opts = append(opts, rest.WithTimeout(b.Timeout))
	}
	return opts
}
