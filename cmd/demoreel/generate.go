package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/demoreel/internal/cli"
	"github.com/aretw0/demoreel/internal/config"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render both dashboards and write the video creation guide",
	Long: `Renders 150 frames of each dashboard in memory, then writes
video-creation-guide.md to ../public/videos/. That directory must already exist.

Use --export-dir to keep the frames as PNG files for ffmpeg, and --preview
to write a small animated PNG per dashboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		applyGenerateFlags(cmd, &cfg)

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		if _, err := cli.RunGenerate(ctx, cfg, os.Stdout); err != nil {
			if sig := ctx.Signal(); sig != nil {
				fmt.Printf("\nInterrupted by %v\n", sig)
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

// applyGenerateFlags overrides config values with the flags the user actually set.
// The root command shares this Run without declaring the flags, so lookups may fail silently.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("frames") {
		cfg.Frames, _ = flags.GetInt("frames")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("topic") {
		cfg.Topics, _ = flags.GetStringSlice("topic")
	}
	if flags.Changed("guide") {
		cfg.GuidePath, _ = flags.GetString("guide")
	}
	if flags.Changed("export-dir") {
		cfg.ExportDir, _ = flags.GetString("export-dir")
	}
	if flags.Changed("preview") {
		cfg.PreviewDir, _ = flags.GetString("preview")
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("frames", 150, "Frames per dashboard")
	generateCmd.Flags().Uint64("seed", 0, "Random seed (0 picks a fresh one each run)")
	generateCmd.Flags().StringSlice("topic", nil, "Dashboards to render (bess, vision-nav)")
	generateCmd.Flags().String("guide", "", "Guide output path (default ../public/videos/video-creation-guide.md)")
	generateCmd.Flags().String("export-dir", "", "Write every frame as <dir>/<topic>/frame_NNNN.png")
	generateCmd.Flags().String("preview", "", "Write an animated PNG preview per dashboard into this directory")
	generateCmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text format when done")
	generateCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")

	// Plain "demoreel" generates.
	rootCmd.Run = generateCmd.Run
}
