package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered action tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		assistant, err := buildAssistant(cmd, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize assistant: %w", err)
		}

		out, err := yaml.Marshal(assistant.Tools().ListTools())
		if err != nil {
			return fmt.Errorf("failed to marshal tools: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
