package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Default settings values.
const (
	DefaultAPIKey    = "api2demo"
	DefaultProvider  = "Rijksmuseum"
	DefaultBaseURL   = "https://api.europeana.eu/record/v2/search.json"
	DefaultRows      = 50
	DefaultMaxPages  = 1
	DefaultRateLimit = 5.0
	DefaultTimeout   = 30 * time.Second

	// MaxRows is the largest page size the search API accepts.
	MaxRows = 100
)

// Settings keys as stored in the config file.
const (
	SettingAPIKey    = "europeana.api_key"
	SettingProvider  = "europeana.provider"
	SettingBaseURL   = "europeana.base_url"
	SettingRows      = "europeana.rows"
	SettingMaxPages  = "europeana.max_pages"
	SettingRateLimit = "europeana.rate_limit"
	SettingTimeout   = "europeana.timeout"
)

// SettingKeys returns every recognised settings key in display order.
func SettingKeys() []string {
	return []string{
		SettingAPIKey,
		SettingProvider,
		SettingBaseURL,
		SettingRows,
		SettingMaxPages,
		SettingRateLimit,
		SettingTimeout,
	}
}

// Settings configures access to the search API.
type Settings struct {
	// APIKey is sent as the wskey parameter.
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Provider scopes every query to one data provider.
	Provider string `json:"provider" yaml:"provider"`

	// BaseURL is the search endpoint.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Rows is the page size of artwork queries.
	Rows int `json:"rows" yaml:"rows"`

	// MaxPages bounds cursor paging. 1 fetches a single page.
	MaxPages int `json:"maxPages" yaml:"maxPages"`

	// RateLimit is the request budget in requests per second.
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`

	// Timeout bounds a single HTTP request.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultSettings returns settings that work against the public demo key.
func DefaultSettings() Settings {
	return Settings{
		APIKey:    DefaultAPIKey,
		Provider:  DefaultProvider,
		BaseURL:   DefaultBaseURL,
		Rows:      DefaultRows,
		MaxPages:  DefaultMaxPages,
		RateLimit: DefaultRateLimit,
		Timeout:   DefaultTimeout,
	}
}

// Validate checks that the settings can drive a query.
func (s Settings) Validate() error {
	if s.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidInput)
	}
	if s.Provider == "" {
		return fmt.Errorf("%w: provider is required", ErrInvalidInput)
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q is not absolute", ErrInvalidInput, s.BaseURL)
	}
	if s.Rows < 0 || s.Rows > MaxRows {
		return fmt.Errorf("%w: rows must be between 0 and %d", ErrInvalidInput, MaxRows)
	}
	if s.MaxPages < 1 {
		return fmt.Errorf("%w: max pages must be at least 1", ErrInvalidInput)
	}
	if s.RateLimit <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalidInput)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidInput)
	}
	return nil
}

// Get returns the string form of the setting named key.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case SettingAPIKey:
		return s.APIKey, nil
	case SettingProvider:
		return s.Provider, nil
	case SettingBaseURL:
		return s.BaseURL, nil
	case SettingRows:
		return strconv.Itoa(s.Rows), nil
	case SettingMaxPages:
		return strconv.Itoa(s.MaxPages), nil
	case SettingRateLimit:
		return strconv.FormatFloat(s.RateLimit, 'g', -1, 64), nil
	case SettingTimeout:
		return s.Timeout.String(), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
}

// Set parses value into the setting named key.
// The settings are not validated as a whole.
func (s *Settings) Set(key, value string) error {
	switch key {
	case SettingAPIKey:
		s.APIKey = value
	case SettingProvider:
		s.Provider = value
	case SettingBaseURL:
		s.BaseURL = value
	case SettingRows:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
		}
		s.Rows = n
	case SettingMaxPages:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
		}
		s.MaxPages = n
	case SettingRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
		}
		s.RateLimit = f
	case SettingTimeout:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
		}
		s.Timeout = d
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return nil
}

// IsSecret reports whether the setting should be masked in listings.
func IsSecret(key string) bool {
	return key == SettingAPIKey
}

// MaskSecret hides all but the last four characters of a secret.
func MaskSecret(value string) string {
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
