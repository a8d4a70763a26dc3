// Package mcp provides an MCP (Model Context Protocol) server adapter for
// resumebuddy. It lets AI assistants tailor resumes and write cover letters
// from the locally stored profile.
package mcp

import "errors"

// ErrMissingPipeline is returned when the pipeline is not provided.
var ErrMissingPipeline = errors.New("mcp: pipeline is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("mcp: settings service is required")
