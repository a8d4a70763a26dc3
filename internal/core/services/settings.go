package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// APIKeyEnv overrides the stored API key when set.
//
//nolint:gosec // G101: This is an environment variable name, not a credential.
const APIKeyEnv = "RESUMEBUDDY_API_KEY"

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGeminiAPIKey  = "gemini.api_key"
	keyGeminiModel   = "gemini.model"
	keyGeminiBaseURL = "gemini.base_url"
	keyGeminiTimeout = "gemini.timeout_seconds"
	keyTheme         = "appearance.theme"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings.
// The API key reflects the environment override when one is set.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Gemini: domain.GeminiSettings{
			APIKey:         s.APIKey(),
			Model:          s.getString(keyGeminiModel, defaults.Gemini.Model),
			BaseURL:        s.getString(keyGeminiBaseURL, defaults.Gemini.BaseURL),
			TimeoutSeconds: s.configStore.GetInt(keyGeminiTimeout),
		},
		Appearance: domain.AppearanceSettings{
			Theme: s.getTheme(defaults.Appearance.Theme),
		},
	}

	return settings, nil
}

// SetAPIKey stores the provider key after trimming whitespace.
func (s *SettingsService) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: API key is empty", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyGeminiAPIKey, key); err != nil {
		return fmt.Errorf("save api_key: %w", err)
	}
	return nil
}

// ClearAPIKey removes the stored key. An environment override is untouched.
func (s *SettingsService) ClearAPIKey() error {
	if err := s.configStore.Delete(keyGeminiAPIKey); err != nil {
		return fmt.Errorf("clear api_key: %w", err)
	}
	return nil
}

// APIKey returns the effective key. The environment wins over the file.
func (s *SettingsService) APIKey() string {
	if key := strings.TrimSpace(s.getenv(APIKeyEnv)); key != "" {
		return key
	}
	return s.configStore.GetString(keyGeminiAPIKey)
}

// SetTheme updates the colour theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: invalid theme: %s", domain.ErrInvalidInput, theme)
	}
	if err := s.configStore.Set(keyTheme, theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// SetModel updates the model name.
func (s *SettingsService) SetModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return fmt.Errorf("%w: model is empty", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyGeminiModel, model); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}

// SetTimeout bounds each model request. Zero removes the bound.
func (s *SettingsService) SetTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidInput)
	}
	seconds := int(timeout / time.Second)
	if timeout > 0 && seconds == 0 {
		return fmt.Errorf("%w: timeout must be at least one second", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyGeminiTimeout, seconds); err != nil {
		return fmt.Errorf("save timeout_seconds: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getTheme(defaultVal domain.Theme) domain.Theme {
	theme := domain.Theme(s.configStore.GetString(keyTheme))
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}
