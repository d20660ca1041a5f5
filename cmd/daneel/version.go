package main

import (
	"fmt"
	"strings"

	"github.com/daneel-ai/daneel"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of daneel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daneel version %s\n", strings.TrimSpace(daneel.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
