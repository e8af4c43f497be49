package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inkwell-data/policyscan/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "policyscan",
	Short: "Insurance policy field extraction",
	Long:  "Extracts financial and identifying fields (premiums, taxes, coverage limits, policy numbers, dates, vehicle identifiers) from insurance policy documents using keyword-anchored pattern matching with confidence scoring.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

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
