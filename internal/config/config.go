package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/imishinist/rlboard/internal/models"
)

// Valid configuration values
var (
	validTimeResolutions = map[string]bool{
		"": true, "1m": true, "5m": true, "1h": true,
	}
	validTimeAlignments = map[string]bool{
		"floor": true, "ceil": true, "round": true,
	}
	validOutputs = map[string]bool{
		"table": true, "json": true, "yaml": true,
	}
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	BaseDir               string `mapstructure:"base_dir" validate:"required"`
	MetricsDir            string `mapstructure:"metrics_dir" validate:"required,excludesall=/"`
	MetricsExt            string `mapstructure:"metrics_ext" validate:"required,startswith=."`
	HyperparametersDir    string `mapstructure:"hyperparameters_dir" validate:"required,excludesall=/"`
	HyperparametersSuffix string `mapstructure:"hyperparameters_suffix"`
	TimeColumn            string `mapstructure:"time_column" validate:"required"`
	TimeResolution        string `mapstructure:"time_resolution"`
	TimeAlignment         string `mapstructure:"time_alignment"`
	StrictFilter          bool   `mapstructure:"strict_filter"`
	LogLevel              string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error disabled"`
	Output                string `mapstructure:"output"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base_dir", "logs")
	v.SetDefault("metrics_dir", "metrics")
	v.SetDefault("metrics_ext", ".csv")
	v.SetDefault("hyperparameters_dir", "hyperparameters")
	v.SetDefault("hyperparameters_suffix", "_hyperparameters")
	v.SetDefault("time_column", "timestamp")
	v.SetDefault("time_resolution", "")
	v.SetDefault("time_alignment", "floor")
	v.SetDefault("strict_filter", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "table")
}

// FromViper snapshots v into a Config.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		BaseDir:               v.GetString("base_dir"),
		MetricsDir:            v.GetString("metrics_dir"),
		MetricsExt:            v.GetString("metrics_ext"),
		HyperparametersDir:    v.GetString("hyperparameters_dir"),
		HyperparametersSuffix: v.GetString("hyperparameters_suffix"),
		TimeColumn:            v.GetString("time_column"),
		TimeResolution:        v.GetString("time_resolution"),
		TimeAlignment:         v.GetString("time_alignment"),
		StrictFilter:          v.GetBool("strict_filter"),
		LogLevel:              strings.ToLower(v.GetString("log_level")),
		Output:                strings.ToLower(v.GetString("output")),
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Validate time resolution
	if !validTimeResolutions[c.TimeResolution] {
		return fmt.Errorf("invalid time resolution: %s (valid: 1m, 5m, 1h)", c.TimeResolution)
	}

	// Validate time alignment
	if !validTimeAlignments[c.TimeAlignment] {
		return fmt.Errorf("invalid time alignment: %s (valid: floor, ceil, round)", c.TimeAlignment)
	}

	if !validOutputs[c.Output] {
		return fmt.Errorf("invalid output format: %s (valid: table, json, yaml)", c.Output)
	}

	return nil
}

// FilterMode maps StrictFilter onto the explorer's filter mode.
func (c *Config) FilterMode() models.FilterMode {
	if c.StrictFilter {
		return models.FilterStrict
	}
	return models.FilterPermissive
}

func (c *Config) TimeConfig() models.TimeConfig {
	return models.TimeConfig{
		Column:     c.TimeColumn,
		Resolution: c.TimeResolution,
		Alignment:  c.TimeAlignment,
	}
}
