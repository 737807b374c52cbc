package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/walksafe/seedgen/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "Synthetic incident dataset generator",
	Long:  "Generates geographically plausible accident and crime datasets for the walk-safety scoring model, mixing an unbiased baseline with tier-shaped synthetic records inside a configured coverage area.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		zap.L().Debug("command start", zap.String("command", cmd.Name()))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
