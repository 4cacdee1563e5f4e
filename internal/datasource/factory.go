package datasource

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/ff-toolbox/internal/config"
)

// Factory creates RankingsSource implementations based on configuration
type Factory struct {
	logger *logrus.Logger
}

// NewFactory creates a new rankings source factory
func NewFactory(logger *logrus.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewSource creates a RankingsSource from a single source configuration
func (f *Factory) NewSource(cfg config.RankingsSourceConfig) (RankingsSource, error) {
	switch cfg.Name {
	case StaticSourceName:
		return NewStaticSource(), nil

	default:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("source %s requires base_url", cfg.Name)
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("source %s requires an API key", cfg.Name)
		}

		httpCfg := DefaultHTTPClientConfig()
		if cfg.RateLimit > 0 {
			httpCfg.RateLimit = cfg.RateLimit
		}
		if cfg.TimeoutSeconds > 0 {
			httpCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}

		httpClient := NewRateLimitedHTTPClient(httpCfg, f.logger)
		return NewProjectionsClient(httpClient, cfg.Name, cfg.BaseURL, cfg.APIKey, f.logger), nil
	}
}

// NewSources creates all configured rankings sources, each wrapped in a
// TTL cache when caching is enabled.
func (f *Factory) NewSources(cfg config.RankingsConfig) ([]RankingsSource, error) {
	sources := make([]RankingsSource, 0, len(cfg.Sources))

	for _, srcCfg := range cfg.Sources {
		source, err := f.NewSource(srcCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create rankings source %s: %w", srcCfg.Name, err)
		}

		if cfg.CacheTTLSeconds > 0 {
			source = NewCachedSource(source, time.Duration(cfg.CacheTTLSeconds)*time.Second)
		}

		sources = append(sources, source)
		if f.logger != nil {
			f.logger.WithField("source", srcCfg.Name).Info("Created rankings source")
		}
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no rankings sources configured")
	}

	return sources, nil
}
