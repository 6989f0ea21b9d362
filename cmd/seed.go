package cmd

import (
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/predictor"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/seeder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate synthetic prediction history in the analytics store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx := cmd.Context()
		predictions, statuses, cleanup, err := buildRepositories(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		s := seeder.New(cfg.Seeder, predictor.New(cfg.Seed), predictions, statuses, cfg.Seed, logger)
		return s.Run(ctx)
	},
}

func init() {
	seedCmd.Flags().Int("seeder.predictions", 500, "Number of synthetic prediction records")
	seedCmd.Flags().Int("seeder.status_checks", 50, "Number of synthetic status checks")
	viper.BindPFlags(seedCmd.Flags())

	rootCmd.AddCommand(seedCmd)
}
