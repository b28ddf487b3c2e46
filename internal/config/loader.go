// Package config provides configuration management for the Gridpace application.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix("GRIDPACE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional fields.
// Missing config files are tolerated; defaults carry the run.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix("GRIDPACE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults documents the chosen defaults for every transform the source
// material left qualitative: the rank-linear prior, the tier variance table,
// the trust-weight ladder and the regulation scaling.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "gridpace")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("predictor.scoring_method", "zscore_normalized")
	v.SetDefault("predictor.regulation_state", "stable")
	v.SetDefault("predictor.min_clean_laps", 3)
	v.SetDefault("predictor.variance_floor", 1e-6)
	v.SetDefault("predictor.trust_weight_table", map[string]float64{
		"practice":          0.3,
		"sprint_qualifying": 0.8,
	})
	v.SetDefault("predictor.regulation_scale", map[string]float64{
		"stable": 1.0,
		"reset":  1.5,
	})
	v.SetDefault("predictor.metric_weights", map[string]float64{
		"slow_corner":   0.2,
		"medium_corner": 0.4,
		"high_corner":   0.2,
		"straight":      0.2,
		"consistency":   0.0,
	})

	v.SetDefault("predictor.prior.top_mean", 20.0)
	v.SetDefault("predictor.prior.rank_step", 0.75)
	v.SetDefault("predictor.prior.tier_variance", map[string]float64{
		"top":        9.0,
		"midfield":   16.0,
		"backmarker": 25.0,
	})
	v.SetDefault("predictor.prior.rookie_inflation", 1.5)
	v.SetDefault("predictor.prior.established_after", 3)
	v.SetDefault("predictor.prior.established_shrink", 0.8)

	v.SetDefault("predictor.evidence.base_variance", 4.0)
	v.SetDefault("predictor.evidence.reference_laps", 10)

	v.SetDefault("provider.source", "file")
	v.SetDefault("provider.path", "./data/season.json")
	v.SetDefault("provider.timeout_seconds", 30)
	v.SetDefault("provider.max_retries", 5)
	v.SetDefault("provider.rate_limit", 10.0)
	v.SetDefault("provider.cache_ttl_seconds", 300)

	v.SetDefault("validation.min_history", 1)
	v.SetDefault("validation.scale_grid", []float64{0.5, 0.75, 1.0, 1.25, 1.5, 2.0})
	v.SetDefault("validation.workers", 4)
}
