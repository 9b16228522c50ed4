package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATASET_PATH", "/tmp/reviews.xlsx")
	t.Setenv("DATASET_SHEET", "Reviews")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PREVIEW_ROWS", "5")
	t.Setenv("CHART_WIDTH", "60")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "/tmp/reviews.xlsx", cfg.DatasetPath)
	assert.Equal(t, "Reviews", cfg.DatasetSheet)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.PreviewRows)
	assert.Equal(t, 60, cfg.ChartWidth)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"unknown log level", "LOG_LEVEL", "verbose", "invalid config"},
		{"chart too narrow", "CHART_WIDTH", "5", "invalid config"},
		{"negative preview", "PREVIEW_ROWS", "-1", "invalid config"},
		{"not a number", "PREVIEW_ROWS", "lots", "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "info")
			t.Setenv("CHART_WIDTH", "40")
			t.Setenv("PREVIEW_ROWS", "20")
			t.Setenv("DATASET_PATH", "data/customer_reviews.csv")
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEnv_DefaultsToDev(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "dev", Env())

	t.Setenv("APP_ENV", "production")
	assert.Equal(t, "production", Env())
}
