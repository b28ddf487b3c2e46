package datasource

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridpace/internal/config"
)

// New creates a Provider from configuration, wrapping it with the TTL
// cache when one is configured
func New(cfg config.ProviderConfig, logger *logrus.Logger) (Provider, error) {
	var provider Provider

	switch cfg.Source {
	case "file":
		if cfg.Path == "" {
			return nil, fmt.Errorf("file provider requires a path")
		}
		provider = NewFileProvider(cfg.Path)

	case "http":
		httpCfg := DefaultHTTPClientConfig()
		httpCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		httpCfg.MaxRetries = cfg.MaxRetries
		if cfg.RateLimit > 0 {
			httpCfg.RateLimit = cfg.RateLimit
		}
		client := NewRateLimitedHTTPClient(httpCfg, logger)
		httpProvider, err := NewHTTPProvider(cfg.BaseURL, client)
		if err != nil {
			return nil, err
		}
		provider = httpProvider

	default:
		return nil, fmt.Errorf("unknown provider source: %s", cfg.Source)
	}

	if cfg.CacheTTLSeconds > 0 {
		provider = NewCachedProvider(provider, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	}

	return provider, nil
}
