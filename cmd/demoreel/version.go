package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/demoreel"
	"github.com/aretw0/demoreel/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of demoreel",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(os.Stdout)
		fmt.Printf("demoreel version %s\n", strings.TrimSpace(demoreel.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
