package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/citypulse/trafficq/internal/dataset"
	"github.com/citypulse/trafficq/internal/logger"
	"github.com/citypulse/trafficq/internal/traffic"
)

var askRaw bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer one question from the command line",
	Long: `Loads the dataset, answers a single free-text question, and prints the
same text the HTTP API would return.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askRaw, "raw", false, "Display the average with two decimals instead of rounding")
	RootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Debug("Dataset loaded from %s: %d records retained, %d rows dropped",
		cfg.Dataset.Path, store.Len(), store.Dropped())

	predictor := traffic.New(store, cfg.Dataset.Rounded && !askRaw)
	fmt.Println(predictor.HandleUserQuery(strings.Join(args, " ")))
	return nil
}
