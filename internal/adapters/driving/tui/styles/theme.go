// Package styles provides colour themes and styling for terminal output.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates a passing score.
	Success lipgloss.Color

	// Warning indicates a borderline score.
	Warning lipgloss.Color

	// Error indicates a failing score or an error.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// LightTheme returns the palette for light terminals.
func LightTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#6D28D9"),
		Secondary:  lipgloss.Color("#0E7490"),
		Foreground: lipgloss.Color("#1F2937"),
		Muted:      lipgloss.Color("#6B7280"),
		Success:    lipgloss.Color("#15803D"),
		Warning:    lipgloss.Color("#B45309"),
		Error:      lipgloss.Color("#B91C1C"),
		Border:     lipgloss.Color("#D1D5DB"),
	}
}

// ThemeFor returns the palette for a stored theme preference.
// Unknown values fall back to dark.
func ThemeFor(theme domain.Theme) *Theme {
	if theme == domain.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Label style for key/value output.
	Label lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Box style for bordered blocks such as cover letters.
	Box lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DarkTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// ForSettings returns styles for the stored appearance preference.
func ForSettings(appearance domain.AppearanceSettings) *Styles {
	return NewStyles(ThemeFor(appearance.Theme))
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// BandStyle returns the style for a score band.
func (s *Styles) BandStyle(band domain.ScoreBand) lipgloss.Style {
	switch band {
	case domain.BandPass:
		return s.Success
	case domain.BandWarn:
		return s.Warning
	default:
		return s.Error
	}
}

// Score renders a total score coloured by its band.
func (s *Styles) Score(score float64) string {
	return s.BandStyle(domain.Band(score)).Bold(true).Render(fmt.Sprintf("%g/100", score))
}

// barWidth is the number of cells in a section bar.
const barWidth = 20

// SectionBar renders a rubric section as "score/max" and a bar coloured
// by the fraction of max achieved.
func (s *Styles) SectionBar(score float64, maxScore int) string {
	pct := 0.0
	if maxScore > 0 {
		pct = score / float64(maxScore) * 100
	}
	filled := int(pct / 100 * barWidth)
	filled = max(0, min(barWidth, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("%5g/%-3d %s", score, maxScore, s.BandStyle(domain.Band(pct)).Render(bar))
}
