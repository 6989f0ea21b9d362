package cmd

import (
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/exporter"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportLimit int

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the prediction log to a parquet file (local or S3)",
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
		predictions, _, cleanup, err := buildRepositories(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = exporter.New(cfg.Export, predictions, logger).Run(ctx, exportLimit)
		return err
	},
}

func init() {
	exportCmd.Flags().IntVar(&exportLimit, "limit", 10000, "Maximum number of records to export")
	exportCmd.Flags().String("export.destination", "local", "Export destination (local or s3)")
	exportCmd.Flags().String("export.output_folder", "output", "Local output folder")
	viper.BindPFlags(exportCmd.Flags())

	rootCmd.AddCommand(exportCmd)
}
