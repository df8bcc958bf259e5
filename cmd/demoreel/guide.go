package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/demoreel/internal/cli"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Write or print the video creation guide",
	Run: func(cmd *cobra.Command, args []string) {
		printOnly, _ := cmd.Flags().GetBool("print")
		if printOnly {
			width, _ := cmd.Flags().GetInt("width")
			if err := cli.PrintGuide(os.Stdout, width); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		cfg := loadConfig(cmd)
		if cmd.Flags().Changed("out") {
			cfg.GuidePath, _ = cmd.Flags().GetString("out")
		}
		if err := cli.WriteGuide(cfg.GuidePath, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
	guideCmd.Flags().StringP("out", "o", "", "Guide output path (default ../public/videos/video-creation-guide.md)")
	guideCmd.Flags().Bool("print", false, "Print the guide instead of writing it")
	guideCmd.Flags().Int("width", 80, "Word wrap width when printing to a terminal")
}
