// Command resolve3 is a thin CLI front-end over pkg/resolver: three input
// files in (base, left, right), merged text or conflict-marker text out.
// It holds no merge logic of its own; everything here is argument
// plumbing, config loading, and reporting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "resolve3",
		Short:         "Three-way merge conflict resolver",
		SilenceErrors: true,
	}

	root.AddCommand(newMergeCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "resolve3 0.1.0-dev")
		},
	}
}
