package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imishinist/rlboard/internal/models"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg := FromViper(newViper(nil))

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "logs", cfg.BaseDir)
	assert.Equal(t, "metrics", cfg.MetricsDir)
	assert.Equal(t, ".csv", cfg.MetricsExt)
	assert.Equal(t, "hyperparameters", cfg.HyperparametersDir)
	assert.Equal(t, "_hyperparameters", cfg.HyperparametersSuffix)
	assert.Equal(t, models.FilterPermissive, cfg.FilterMode())
	assert.Equal(t, models.TimeConfig{Column: "timestamp", Resolution: "", Alignment: "floor"}, cfg.TimeConfig())
}

func TestFromViper_Overrides(t *testing.T) {
	cfg := FromViper(newViper(map[string]any{
		"base_dir":        "/data/runs",
		"strict_filter":   true,
		"time_resolution": "5m",
		"time_alignment":  "round",
		"log_level":       "DEBUG",
		"output":          "JSON",
	}))

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "/data/runs", cfg.BaseDir)
	assert.Equal(t, models.FilterStrict, cfg.FilterMode())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "5m", cfg.TimeConfig().Resolution)
}

func TestValidate_Errors(t *testing.T) {
	tests := map[string]map[string]any{
		"empty base dir":       {"base_dir": ""},
		"metrics dir with sep": {"metrics_dir": "a/b"},
		"ext without dot":      {"metrics_ext": "csv"},
		"empty time column":    {"time_column": ""},
		"bad resolution":       {"time_resolution": "2d"},
		"bad alignment":        {"time_alignment": "nearest"},
		"bad log level":        {"log_level": "loud"},
		"bad output":           {"output": "xml"},
	}

	for name, overrides := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, FromViper(newViper(overrides)).Validate())
		})
	}
}
