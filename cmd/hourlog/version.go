package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olegiv/hourlog-go/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hourlog %s\n", version.Get())
	},
}
