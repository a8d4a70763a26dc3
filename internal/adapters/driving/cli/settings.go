package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/services"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the Gemini API key, model, theme and request timeout.

Settings are stored in config.toml in the config directory. The
RESUMEBUDDY_API_KEY environment variable (or a .env file) overrides the
stored key.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsAPIKeyCmd = &cobra.Command{
	Use:   "api-key [key]",
	Short: "Set the Gemini API key",
	Long: `Store the Gemini API key. When no key is given it is read from the
terminal without echo.

Get a free key at https://aistudio.google.com/apikey`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsAPIKey,
}

var settingsClearAPIKeyCmd = &cobra.Command{
	Use:   "clear-api-key",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE:  runSettingsClearAPIKey,
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme <light|dark>",
	Short:     "Set the colour theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
	RunE:      runSettingsTheme,
}

var settingsModelCmd = &cobra.Command{
	Use:   "model <name>",
	Short: "Set the Gemini model",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsModel,
}

var settingsTimeoutCmd = &cobra.Command{
	Use:   "timeout <duration>",
	Short: "Bound each model request",
	Long: `Abort the model call if no response arrives in time. Use 0 to wait
indefinitely, which is the default.

Example:
  resumebuddy settings timeout 90s`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsTimeout,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsAPIKeyCmd)
	settingsCmd.AddCommand(settingsClearAPIKeyCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsModelCmd)
	settingsCmd.AddCommand(settingsTimeoutCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if jsonOutput {
		masked := *settings
		masked.Gemini.APIKey = logger.Redact(settings.Gemini.APIKey)
		return printJSON(cmd, masked)
	}

	st := currentStyles()
	cmd.Println(st.Title.Render("Current Settings"))
	cmd.Println()

	cmd.Println(st.Subtitle.Render("[Gemini]"))
	if settings.Gemini.HasAPIKey() {
		source := "config file"
		if os.Getenv(services.APIKeyEnv) != "" {
			source = services.APIKeyEnv
		}
		cmd.Printf("  API Key: %s (from %s)\n", logger.Redact(settings.Gemini.APIKey), source)
	} else {
		cmd.Println("  API Key: (not set)")
	}
	cmd.Printf("  Model: %s\n", settings.Gemini.Model)
	cmd.Printf("  Base URL: %s\n", settings.Gemini.BaseURL)
	if settings.Gemini.TimeoutSeconds > 0 {
		cmd.Printf("  Timeout: %ds\n", settings.Gemini.TimeoutSeconds)
	} else {
		cmd.Println("  Timeout: none")
	}
	cmd.Println()

	cmd.Println(st.Subtitle.Render("[Appearance]"))
	cmd.Printf("  Theme: %s\n", settings.Appearance.Theme.Description())

	return nil
}

func runSettingsAPIKey(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		cmd.Print("Enter Gemini API key: ")
		key = readPassword(cmd.InOrStdin())
		cmd.Println()
	}

	if err := settingsService.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	cmd.Printf("API key saved: %s\n", logger.Redact(strings.TrimSpace(key)))
	return nil
}

func runSettingsClearAPIKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.ClearAPIKey(); err != nil {
		return fmt.Errorf("failed to clear API key: %w", err)
	}
	cmd.Println("API key removed.")
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	theme := domain.Theme(strings.ToLower(args[0]))
	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	cmd.Printf("Theme set to %s\n", theme)
	return nil
}

func runSettingsModel(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.SetModel(args[0]); err != nil {
		return fmt.Errorf("failed to set model: %w", err)
	}
	cmd.Printf("Model set to %s\n", args[0])
	return nil
}

func runSettingsTimeout(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	timeout, err := parseTimeout(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout: %w", err)
	}
	if timeout == 0 {
		cmd.Println("Timeout disabled")
		return nil
	}
	cmd.Printf("Timeout set to %s\n", timeout)
	return nil
}

// parseTimeout accepts a duration ("90s") or a bare number of seconds.
func parseTimeout(arg string) (time.Duration, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", arg, err)
	}
	return d, nil
}

// readPassword reads a line without echo when in is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
