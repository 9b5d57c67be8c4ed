// Package main provides the flowgrad CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:   "flowgrad",
		Short: "Reverse-mode automatic differentiation for Go",
	}
	root.AddCommand(newVersionCmd(), newBenchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("flowgrad %s\n", version)
		},
	}
}
