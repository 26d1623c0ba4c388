// Package main implements the todo CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "todo",
	Short:        "todo - a personal task tracker",
	SilenceUsage: true,
}
