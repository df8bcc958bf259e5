package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/demoreel/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "demoreel",
	Short: "demoreel renders animated dashboard frames for portfolio demo videos",
	Long: `demoreel synthesizes the BESS Optimizer and Vision Navigation dashboards,
then writes a guide explaining how to turn them into MP4 videos.

Running demoreel without a subcommand is the same as "demoreel generate".`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML or TOML file with generation settings")
}

// loadConfig reads --config when given and falls back to the built-in defaults.
func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
