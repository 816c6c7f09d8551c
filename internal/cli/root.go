// Package cli implements the trafficq CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citypulse/trafficq/internal/config"
	"github.com/citypulse/trafficq/internal/logger"
)

var cfgFile string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "trafficq",
	Short: "Answers natural-language questions about expected road traffic",
	Long: `trafficq estimates road traffic volume at a given hour (and optionally a
specific date) by averaging historical counts from a recorded dataset.
Questions are free text, e.g. "how busy is it at 10am on 2015-07-24".`,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yaml", "Path to configuration file")
}

// loadConfig loads and validates the configuration, then initializes logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Debug("Configuration loaded from %s", cfgFile)
	return cfg, nil
}
