package domain

const unknownDescription = "Unknown"

// Theme is the colour scheme used for terminal output.
type Theme string

// Available themes.
const (
	// ThemeDark is the default theme.
	ThemeDark Theme = "dark"

	// ThemeLight suits light terminal backgrounds.
	ThemeLight Theme = "light"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeDark:
		return "Dark (light text on dark background)"
	case ThemeLight:
		return "Light (dark text on light background)"
	default:
		return unknownDescription
	}
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}

// Default model provider values.
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-2.5-flash"
)

// GeminiSettings holds model provider configuration.
type GeminiSettings struct {
	// APIKey is the user-supplied key. Never logged.
	APIKey string

	// Model is the generateContent model name.
	Model string

	// BaseURL is the API endpoint root.
	BaseURL string

	// TimeoutSeconds bounds each HTTP request. Zero means no timeout.
	TimeoutSeconds int
}

// HasAPIKey returns true if a key is configured.
func (g GeminiSettings) HasAPIKey() bool {
	return g.APIKey != ""
}

// AppearanceSettings holds presentation preferences.
type AppearanceSettings struct {
	Theme Theme
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Gemini holds model provider settings.
	Gemini GeminiSettings

	// Appearance holds theme settings.
	Appearance AppearanceSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The API key is left empty; users must supply their own.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Gemini: GeminiSettings{
			Model:   DefaultGeminiModel,
			BaseURL: DefaultGeminiBaseURL,
		},
		Appearance: AppearanceSettings{
			Theme: ThemeDark,
		},
	}
}
