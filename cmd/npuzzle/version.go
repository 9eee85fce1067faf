package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gsearch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of npuzzle",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "npuzzle version %s\n", gsearch.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
