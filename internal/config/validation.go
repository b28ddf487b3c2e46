// Package config provides configuration management for the Gridpace application.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Register custom validation functions
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("scoringmethod", validateScoringMethod)
	_ = v.RegisterValidation("regulationstate", validateRegulationState)
	_ = v.RegisterValidation("trustweights", validateTrustWeights)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateScoringMethod validates the scoring method selector
func validateScoringMethod(fl validator.FieldLevel) bool {
	method := fl.Field().String()
	switch method {
	case "simple_weighted", "zscore_normalized", "prior_only":
		return true
	default:
		return false
	}
}

// validateRegulationState validates the regulation state flag
func validateRegulationState(fl validator.FieldLevel) bool {
	state := fl.Field().String()
	switch state {
	case "stable", "reset":
		return true
	default:
		return false
	}
}

// validateTrustWeights checks every configured trust weight lies in [0,1]
func validateTrustWeights(fl validator.FieldLevel) bool {
	weights, ok := fl.Field().Interface().(map[string]float64)
	if !ok || len(weights) == 0 {
		return false
	}
	for _, w := range weights {
		if w < 0 || w > 1 {
			return false
		}
	}
	return true
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	// Provider source determines which locator is mandatory
	switch cfg.Provider.Source {
	case "file":
		if cfg.Provider.Path == "" {
			return fmt.Errorf("provider path is required when source is 'file'")
		}
	case "http":
		if cfg.Provider.BaseURL == "" {
			return fmt.Errorf("provider base_url is required when source is 'http'")
		}
	}

	// Regulation scale must cover the configured state
	if _, ok := cfg.Predictor.RegulationScale[cfg.Predictor.RegulationState]; !ok {
		return fmt.Errorf("regulation_scale has no entry for state %q", cfg.Predictor.RegulationState)
	}
	for state, scale := range cfg.Predictor.RegulationScale {
		if scale <= 0 {
			return fmt.Errorf("regulation_scale for state %q must be positive", state)
		}
	}

	// Metric weights must not be all zero unless the method ignores them
	if cfg.Predictor.ScoringMethod != "prior_only" {
		total := 0.0
		for _, w := range cfg.Predictor.MetricWeights {
			if w < 0 {
				return fmt.Errorf("metric weights must be non-negative")
			}
			total += w
		}
		if total == 0 {
			return fmt.Errorf("metric weights sum to zero; method %q would never observe evidence", cfg.Predictor.ScoringMethod)
		}
	}

	// Scale grid entries must be positive
	for _, scale := range cfg.Validation.ScaleGrid {
		if scale <= 0 {
			return fmt.Errorf("validation scale_grid entries must be positive")
		}
	}

	return nil
}

// formatValidationErrors creates a readable error message from validation errors
func formatValidationErrors(errs validator.ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return fmt.Errorf("config validation failed on field '%s' (rule '%s')", first.Namespace(), first.Tag())
}
