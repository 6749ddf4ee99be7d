package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			printBanner()
			fmt.Printf("weft %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
