// Package cli provides the resumebuddy command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driving"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose    bool
	jsonOutput bool
	configDir  string
	dataDir    string
)

// Services injected by cmd/resumebuddy.
var (
	pipeline        driving.Pipeline
	profileService  driving.ProfileService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	jobTextLoader   driving.JobTextLoader
)

// Services groups the driving ports the commands use.
type Services struct {
	Pipeline driving.Pipeline
	Profile  driving.ProfileService
	History  driving.HistoryService
	Settings driving.SettingsService
	JobText  driving.JobTextLoader
}

// Paths are the directories chosen on the command line.
// Empty values mean the defaults.
type Paths struct {
	ConfigDir string
	DataDir   string
}

// Bootstrap wires services for the chosen paths. The returned cleanup
// releases them after the command finishes.
type Bootstrap func(paths Paths) (*Services, func(), error)

var (
	bootstrap Bootstrap
	cleanup   func()
)

// skipBootstrap marks commands that run without services.
const skipBootstrap = "skip-bootstrap"

var rootCmd = &cobra.Command{
	Use:   "resumebuddy",
	Short: "Tailor your resume to a job description",
	Long: `resumebuddy keeps a master career profile on your machine and uses
Gemini to rewrite it against a job description. Each run is scored on a
100 point ATS rubric and saved to local history. It can also write cover
letters.

Get started:
  resumebuddy settings api-key
  resumebuddy profile import profile.toml
  resumebuddy optimize --jd-file job.txt`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show pipeline stages and timings")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.resumebuddy)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.resumebuddy/data)")
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	pipeline = s.Pipeline
	profileService = s.Profile
	historyService = s.History
	settingsService = s.Settings
	jobTextLoader = s.JobText
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. boot is called once flags are parsed.
func Execute(boot Bootstrap) error {
	bootstrap = boot
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.Execute()
}

// initServices applies global flags and wires services on first use.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if bootstrap == nil || cmd.Annotations[skipBootstrap] != "" {
		return nil
	}

	services, done, err := bootstrap(Paths{ConfigDir: configDir, DataDir: dataDir})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services)
	cleanup = done
	bootstrap = nil
	return nil
}

// currentStyles returns styles for the stored theme, or the default.
func currentStyles() *styles.Styles {
	if settingsService == nil {
		return styles.NewStyles(nil)
	}
	settings, err := settingsService.Get()
	if err != nil {
		return styles.NewStyles(nil)
	}
	return styles.ForSettings(settings.Appearance)
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

var (
	errPipelineNotConfigured = errors.New("pipeline not configured")
	errProfileNotConfigured  = errors.New("profile service not configured")
	errHistoryNotConfigured  = errors.New("history service not configured")
	errSettingsNotConfigured = errors.New("settings service not configured")
)
