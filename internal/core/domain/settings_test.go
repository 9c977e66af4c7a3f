package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultSettings tests the default configuration
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "api2demo", s.APIKey)
	assert.Equal(t, "Rijksmuseum", s.Provider)
	assert.Equal(t, "https://api.europeana.eu/record/v2/search.json", s.BaseURL)
	assert.Equal(t, 50, s.Rows)
	assert.Equal(t, 1, s.MaxPages)
	assert.Equal(t, 5.0, s.RateLimit)
	assert.Equal(t, 30*time.Second, s.Timeout)
	assert.NoError(t, s.Validate())
}

// TestSettings_Validate tests validation failures
func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Settings)
	}{
		{"empty api key", func(s *Settings) { s.APIKey = "" }},
		{"empty provider", func(s *Settings) { s.Provider = "" }},
		{"relative base url", func(s *Settings) { s.BaseURL = "/search.json" }},
		{"garbage base url", func(s *Settings) { s.BaseURL = "://" }},
		{"negative rows", func(s *Settings) { s.Rows = -1 }},
		{"too many rows", func(s *Settings) { s.Rows = MaxRows + 1 }},
		{"zero pages", func(s *Settings) { s.MaxPages = 0 }},
		{"zero rate limit", func(s *Settings) { s.RateLimit = 0 }},
		{"zero timeout", func(s *Settings) { s.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
		})
	}
}

// TestSettings_GetSet tests key-based access round trips
func TestSettings_GetSet(t *testing.T) {
	values := map[string]string{
		SettingAPIKey:    "secret-key",
		SettingProvider:  "Mauritshuis",
		SettingBaseURL:   "http://localhost:8080/search.json",
		SettingRows:      "20",
		SettingMaxPages:  "3",
		SettingRateLimit: "2.5",
		SettingTimeout:   "10s",
	}

	s := DefaultSettings()
	for _, key := range SettingKeys() {
		require.NoError(t, s.Set(key, values[key]), key)
	}
	for _, key := range SettingKeys() {
		got, err := s.Get(key)
		require.NoError(t, err)
		assert.Equal(t, values[key], got, key)
	}

	assert.Equal(t, 20, s.Rows)
	assert.Equal(t, 10*time.Second, s.Timeout)
}

// TestSettings_SetInvalid tests parse failures and unknown keys
func TestSettings_SetInvalid(t *testing.T) {
	s := DefaultSettings()

	assert.ErrorIs(t, s.Set(SettingRows, "many"), ErrInvalidInput)
	assert.ErrorIs(t, s.Set(SettingMaxPages, "1.5"), ErrInvalidInput)
	assert.ErrorIs(t, s.Set(SettingRateLimit, "fast"), ErrInvalidInput)
	assert.ErrorIs(t, s.Set(SettingTimeout, "30"), ErrInvalidInput)
	assert.ErrorIs(t, s.Set("europeana.colour", "red"), ErrUnknownSetting)

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownSetting)

	assert.Equal(t, DefaultSettings(), s)
}

// TestMaskSecret tests secret masking
func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "****", MaskSecret(""))
	assert.Equal(t, "****", MaskSecret("abcd"))
	assert.Equal(t, "****demo", MaskSecret("api2demo"))
	assert.True(t, IsSecret(SettingAPIKey))
	assert.False(t, IsSecret(SettingProvider))
}
