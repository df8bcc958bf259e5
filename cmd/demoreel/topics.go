package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/demoreel/internal/cli"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the portfolio videos and which ones demoreel renders",
	Run: func(cmd *cobra.Command, args []string) {
		cli.PrintTopics(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
