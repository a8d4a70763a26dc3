package mcp

import (
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Pipeline runs optimize and cover letter operations.
	Pipeline driving.Pipeline

	// Settings supplies the API key.
	Settings driving.SettingsService

	// Profile exposes the master profile resource.
	Profile driving.ProfileService

	// History lists and reads stored results.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Pipeline == nil {
		return ErrMissingPipeline
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	// Profile and History are optional
	return nil
}
