// cmd/meal-balance/version.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "meal-balance version %s\n", version)
		},
	}
}
