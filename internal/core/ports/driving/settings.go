package driving

import "github.com/custodia-labs/artgraph/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, stored values over defaults.
	Get() (domain.Settings, error)

	// Set parses and stores a single setting.
	// The resulting settings must validate.
	Set(key, value string) error

	// Reset removes a stored setting so its default applies again.
	Reset(key string) error

	// Validate checks the current settings.
	Validate() error

	// Defaults returns the default settings.
	Defaults() domain.Settings
}
