package main

import (
	"fmt"

	present "github.com/daneel-ai/daneel/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the assistant graph visualization",
	Long:  `Compiles the assistant graph and outputs a Mermaid diagram (graph TD) representing the interaction flow.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		assistant, err := buildAssistant(cmd, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize assistant: %w", err)
		}

		fmt.Print(present.GenerateMermaid(assistant.Definition().Nodes(), nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
