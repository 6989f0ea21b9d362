package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/events"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/predictor"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/repositories"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/repositories/memory"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/repositories/postgres"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "traffic-sentinel",
	Short: "Serves traffic congestion predictions for Bangalore junctions",
	Long:  `traffic-sentinel runs the Bangalore Traffic Sentinel API: a map dashboard backed by a heuristic congestion model for four monitored junctions, with optional Postgres analytics storage and Kafka event output.`,
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

		var producer events.Producer
		if cfg.Kafka.Enabled {
			producer, err = events.NewSaramaProducer(cfg.Kafka, logger)
			if err != nil {
				return err
			}
			defer producer.Close()
		}

		srv := server.New(cfg.Server, predictor.New(cfg.Seed), predictions, statuses, producer, logger)
		return srv.Start()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for the prediction model jitter")
	rootCmd.Flags().Int("server.port", 8080, "HTTP server port")
	rootCmd.Flags().String("log_level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("kafka.enabled", false, "Enable Kafka event output")
	rootCmd.Flags().String("kafka.broker_list", "localhost:9092", "Kafka broker list")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	config.Level = zap.NewAtomicLevelAt(parsed)
	return config.Build()
}

// buildRepositories wires the Postgres stores when a database is configured
// and falls back to the in-memory stores otherwise.
func buildRepositories(ctx context.Context, cfg *models.Config, logger *zap.Logger) (repositories.PredictionRepository, repositories.StatusRepository, func(), error) {
	if !cfg.Database.Enabled() {
		logger.Info("no database configured, using in-memory analytics store")
		return memory.NewPredictionRepository(), memory.NewStatusRepository(), func() {}, nil
	}

	pool, err := postgres.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, nil, err
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	logger.Info("connected to database", zap.String("host", cfg.Database.Host), zap.String("dbname", cfg.Database.DBName))
	return postgres.NewPredictionRepository(pool), postgres.NewStatusRepository(pool), pool.Close, nil
}
