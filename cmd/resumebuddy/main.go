// Command resumebuddy tailors a locally stored career profile to job
// descriptions using Gemini.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driven/config/file"
	"github.com/custodia-labs/resumebuddy/internal/adapters/driven/llm/gemini"
	"github.com/custodia-labs/resumebuddy/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/cli"
	"github.com/custodia-labs/resumebuddy/internal/core/services"
	"github.com/custodia-labs/resumebuddy/internal/extractors"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cli.SetVersion(version)
	if err := cli.Execute(bootstrap); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters and services for the chosen directories.
func bootstrap(paths cli.Paths) (*cli.Services, func(), error) {
	// 1. Resolve directories
	configDir := paths.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, nil, err
		}
		configDir = dir
	}
	dataDir := paths.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}
	logger.Debug("config dir: %s, data dir: %s", configDir, dataDir)

	// 2. Settings
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	// 3. Storage
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("database: %s", store.Path())

	// 4. Services
	gateway := gemini.FromSettings(*settings)
	logger.Debug("model: %s", gateway.Model())

	svc := &cli.Services{
		Pipeline: services.NewPipeline(
			store.ProfileStore(),
			store.JobDescriptionStore(),
			store.ResumeStore(),
			store.CoverLetterStore(),
			gateway,
		),
		Profile: services.NewProfileService(store.ProfileStore()),
		History: services.NewHistoryService(
			store.JobDescriptionStore(),
			store.ResumeStore(),
			store.CoverLetterStore(),
		),
		Settings: settingsService,
		JobText:  services.NewJobTextLoader(extractors.DefaultRegistry()),
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing database: %v", err)
		}
	}
	return svc, cleanup, nil
}
