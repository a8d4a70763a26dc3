package driving

import (
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetAPIKey stores the provider key after trimming whitespace.
	// Returns domain.ErrInvalidInput if the trimmed key is empty.
	SetAPIKey(key string) error

	// ClearAPIKey removes the stored key.
	ClearAPIKey() error

	// APIKey returns the effective key. The environment wins over the file.
	APIKey() string

	// SetTheme updates the colour theme.
	SetTheme(theme domain.Theme) error

	// SetModel updates the model name.
	SetModel(model string) error

	// SetTimeout bounds each model request. Zero disables the bound.
	// Returns domain.ErrInvalidInput for negative or sub-second values.
	SetTimeout(timeout time.Duration) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
