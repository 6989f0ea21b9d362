package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Enabled reports whether a database has been configured. Without one the
// service falls back to the in-memory store.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN builds the pgx connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type KafkaConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	BrokerList string `mapstructure:"broker_list"`
	Topic      string `mapstructure:"topic"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
	KeyPrefix  string `mapstructure:"key_prefix"`
}

type ExportConfig struct {
	OutputFolder string             `mapstructure:"output_folder"`
	Destination  string             `mapstructure:"destination"` // local or s3
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
}

type SeederConfig struct {
	Predictions  int `mapstructure:"predictions"`
	StatusChecks int `mapstructure:"status_checks"`
}

type Config struct {
	Seed     int64          `mapstructure:"seed"`
	LogLevel string         `mapstructure:"log_level"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Export   ExportConfig   `mapstructure:"export"`
	Seeder   SeederConfig   `mapstructure:"seeder"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("seed", 42)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.cors_origins", []string{"*"})
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("kafka.broker_list", "localhost:9092")
	viper.SetDefault("kafka.topic", "traffic_predictions")
	viper.SetDefault("export.output_folder", "output")
	viper.SetDefault("export.destination", "local")
	viper.SetDefault("seeder.predictions", 500)
	viper.SetDefault("seeder.status_checks", 50)

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine, an explicit one is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
