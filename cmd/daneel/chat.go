package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/daneel-ai/daneel"
	"github.com/daneel-ai/daneel/pkg/domain"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive assistant session",
	Long: `Starts a read-eval loop on the terminal. Each line is one full
interaction: statements are stored, questions are answered. Type
'exit' or 'quit' to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		assistant, err := buildAssistant(cmd, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize assistant: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println("daneel ready. Type 'exit' to leave.")
		scanner := bufio.NewScanner(os.Stdin)

		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}

			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if input == "exit" || input == "quit" {
				return nil
			}

			resp, err := assistant.Handle(ctx, daneel.Request{RawInput: input})
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}

			for _, e := range resp.Errors {
				fmt.Fprintf(os.Stderr, "warning: %s\n", e)
			}

			if resp.InteractionType == domain.InteractionIngestion {
				fmt.Println("Stored.")
				continue
			}
			fmt.Println(resp.Answer)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
