// Package config provides configuration management for the Gridpace application.
package config

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Predictor  PredictorConfig  `mapstructure:"predictor" validate:"required"`
	Provider   ProviderConfig   `mapstructure:"provider" validate:"required"`
	Validation ValidationConfig `mapstructure:"validation" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// PredictorConfig configures the belief-updating pipeline
type PredictorConfig struct {
	ScoringMethod   string             `mapstructure:"scoring_method" validate:"required,scoringmethod"`
	RegulationState string             `mapstructure:"regulation_state" validate:"required,regulationstate"`
	MinCleanLaps    int                `mapstructure:"min_clean_laps" validate:"required,gt=0"`
	VarianceFloor   float64            `mapstructure:"variance_floor" validate:"required,gt=0"`
	TrustWeights    map[string]float64 `mapstructure:"trust_weight_table" validate:"required,trustweights"`
	RegulationScale map[string]float64 `mapstructure:"regulation_scale" validate:"required"`
	MetricWeights   map[string]float64 `mapstructure:"metric_weights" validate:"required"`
	Prior           PriorConfig        `mapstructure:"prior" validate:"required"`
	Evidence        EvidenceConfig     `mapstructure:"evidence" validate:"required"`
}

// PriorConfig configures the standings-to-prior transform
type PriorConfig struct {
	TopMean          float64            `mapstructure:"top_mean" validate:"required,gt=0"`
	RankStep         float64            `mapstructure:"rank_step" validate:"required,gt=0"`
	TierVariance     map[string]float64 `mapstructure:"tier_variance" validate:"required"`
	RookieInflation  float64            `mapstructure:"rookie_inflation" validate:"required,gte=1"`
	EstablishedAfter int                `mapstructure:"established_after" validate:"required,gt=0"`
	EstablishedShrink float64           `mapstructure:"established_shrink" validate:"required,gt=0,lte=1"`
}

// EvidenceConfig configures observation variance assumptions
type EvidenceConfig struct {
	BaseVariance  float64 `mapstructure:"base_variance" validate:"required,gt=0"`
	ReferenceLaps int     `mapstructure:"reference_laps" validate:"required,gt=0"`
}

// ProviderConfig configures where materialized inputs come from
type ProviderConfig struct {
	Source          string  `mapstructure:"source" validate:"required,oneof=file http"`
	Path            string  `mapstructure:"path"`
	BaseURL         string  `mapstructure:"base_url" validate:"omitempty,url"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries      int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit       float64 `mapstructure:"rate_limit" validate:"gte=0"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// ValidationConfig configures the validation harness
type ValidationConfig struct {
	MinHistory int       `mapstructure:"min_history" validate:"required,gt=0"`
	ScaleGrid  []float64 `mapstructure:"scale_grid" validate:"required,min=1"`
	Workers    int       `mapstructure:"workers" validate:"required,gt=0"`
}

// IsProduction checks if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// RegulationScaleFor returns the trust scale for the configured regulation state
func (p PredictorConfig) RegulationScaleFor() float64 {
	if scale, ok := p.RegulationScale[p.RegulationState]; ok {
		return scale
	}
	return 1.0
}
