package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/subosito/gotenv"
)

// Config is read from the environment once the .env file for APP_ENV has
// been applied.
type Config struct {
	Env          string `envconfig:"APP_ENV" default:"dev"`
	DatasetPath  string `envconfig:"DATASET_PATH" default:"data/customer_reviews.csv" validate:"required"`
	DatasetSheet string `envconfig:"DATASET_SHEET"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	PreviewRows  int    `envconfig:"PREVIEW_ROWS" default:"20" validate:"gte=0"`
	ChartWidth   int    `envconfig:"CHART_WIDTH" default:"40" validate:"gte=10,lte=200"`
}

// Env returns APP_ENV, defaulting to dev.
func Env() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return env
}

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}

// Load applies the .env file for the current APP_ENV and builds a validated
// Config from the environment.
func Load() (*Config, error) {
	LoadEnv(Env())
	return FromEnv()
}

// FromEnv builds a validated Config from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
