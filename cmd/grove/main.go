// Package main provides the Grove FL utilities CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "grove",
		Short: "Grove - federated-learning tensor utilities for Go",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println("Grove - federated-learning tensor utilities for Go")
			fmt.Printf("Version: %s\n\n", version)
			fmt.Println("Packages:")
			fmt.Println("  tensor      Tensor values, partial shapes, finiteness scans")
			fmt.Println("  nest        Nested tensor structures")
			fmt.Println("  graph       Deferred expressions, sessions, variables")
			fmt.Println("  metrics     Streaming sum metrics")
			fmt.Println("  tensorutil  Structural equality, orderings, non-finite guard")
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("Grove FL utilities %s\n", version)
		},
	})

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
