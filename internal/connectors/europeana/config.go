package europeana

import (
	"fmt"
	"net/url"
	"time"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// Config holds the parsed configuration for the connector.
type Config struct {
	APIKey    string
	Provider  string
	BaseURL   string
	Rows      int
	MaxPages  int
	RateLimit float64
	Timeout   time.Duration
}

// ConfigFromSettings maps application settings onto a connector Config.
// Zero numeric values fall back to the defaults.
func ConfigFromSettings(s domain.Settings) *Config {
	cfg := &Config{
		APIKey:    s.APIKey,
		Provider:  s.Provider,
		BaseURL:   s.BaseURL,
		Rows:      s.Rows,
		MaxPages:  s.MaxPages,
		RateLimit: s.RateLimit,
		Timeout:   s.Timeout,
	}
	if cfg.MaxPages < 1 {
		cfg.MaxPages = domain.DefaultMaxPages
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = domain.DefaultRateLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultTimeout
	}
	return cfg
}

// Validate checks the configuration can produce a request.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Provider == "" {
		return ErrMissingProvider
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}
	return nil
}

// QueryBuilder returns the URL builder for this configuration.
func (c *Config) QueryBuilder() QueryBuilder {
	return QueryBuilder{
		APIKey:   c.APIKey,
		Provider: c.Provider,
		BaseURL:  c.BaseURL,
		Rows:     c.Rows,
	}
}
