package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/demoreel/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve individual dashboard frames over HTTP",
	Long: `Starts a preview server that renders any frame of either dashboard on request.
Frames are deterministic for a given --seed, so a URL always shows the same image.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		port, _ := cmd.Flags().GetString("port")
		if cmd.Flags().Changed("seed") {
			cfg.Seed, _ = cmd.Flags().GetUint64("seed")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		if err := cli.RunServe(ctx, ":"+port, cfg, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Uint64("seed", 1, "Random seed for rendered frames")
	serveCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
}
