package services

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
	"github.com/custodia-labs/artgraph/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
// Stored values override defaults; overrides win over both and are
// never persisted.
type SettingsService struct {
	configStore driven.ConfigStore

	mu        sync.RWMutex
	overrides map[string]string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		overrides:   make(map[string]string),
	}
}

// Override sets a process-local value for key, e.g. from the environment.
func (s *SettingsService) Override(key, value string) error {
	scratch := domain.DefaultSettings()
	if err := scratch.Set(key, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[key] = value
	return nil
}

// Get retrieves current settings.
// Stored values that fail to parse are ignored in favour of the default.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := s.stored()

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, key := range domain.SettingKeys() {
		if value, ok := s.overrides[key]; ok {
			if err := settings.Set(key, value); err != nil {
				return settings, err
			}
		}
	}
	return settings, nil
}

// stored returns defaults overlaid with stored values.
func (s *SettingsService) stored() domain.Settings {
	settings := domain.DefaultSettings()
	for _, key := range domain.SettingKeys() {
		value, ok := s.storedValue(key)
		if !ok {
			continue
		}
		if err := settings.Set(key, value); err != nil {
			logger.Warn("Ignoring stored %s: %v", key, err)
		}
	}
	return settings
}

// storedValue returns the stored value of key in string form.
func (s *SettingsService) storedValue(key string) (string, bool) {
	raw, ok := s.configStore.Get(key)
	if !ok {
		return "", false
	}
	switch raw.(type) {
	case string:
		return s.configStore.GetString(key), true
	case float32, float64:
		return strconv.FormatFloat(s.configStore.GetFloat(key), 'g', -1, 64), true
	case int, int32, int64:
		return strconv.Itoa(s.configStore.GetInt(key)), true
	}
	return fmt.Sprint(raw), true
}

// Set parses and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	candidate := s.stored()
	if err := candidate.Set(key, value); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, typedValue(candidate, key)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// typedValue returns the setting named key in its storage type.
func typedValue(settings domain.Settings, key string) any {
	switch key {
	case domain.SettingRows:
		return settings.Rows
	case domain.SettingMaxPages:
		return settings.MaxPages
	case domain.SettingRateLimit:
		return settings.RateLimit
	}
	value, _ := settings.Get(key) //nolint:errcheck // key already validated
	return value
}

// Reset removes a stored setting.
func (s *SettingsService) Reset(key string) error {
	if _, err := domain.DefaultSettings().Get(key); err != nil {
		return err
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// Defaults returns the default settings.
func (s *SettingsService) Defaults() domain.Settings {
	return domain.DefaultSettings()
}
