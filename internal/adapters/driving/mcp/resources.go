package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for resumebuddy resources.
	uriScheme = "resumebuddy://"

	profileURI = uriScheme + "profile"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Profile != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         profileURI,
			Name:        "profile",
			Description: "The master career profile",
			MIMEType:    "application/json",
		}, s.handleProfileResource)
	}

	if s.ports.History != nil {
		s.server.AddResourceTemplate(&mcp.ResourceTemplate{
			URITemplate: uriScheme + "resumes/{resumeId}",
			Name:        "resume",
			Description: "A stored optimized resume with its job description header",
			MIMEType:    "application/json",
		}, s.handleResumeResource)

		s.server.AddResourceTemplate(&mcp.ResourceTemplate{
			URITemplate: uriScheme + "jobs/{jobId}",
			Name:        "job-description",
			Description: "The raw text of a saved job description",
			MIMEType:    "text/plain",
		}, s.handleJobResource)
	}
}

// handleProfileResource returns the master profile as JSON.
func (s *Server) handleProfileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	profile, err := s.ports.Profile.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return jsonResource(req.Params.URI, profile)
}

// handleResumeResource returns one stored resume.
func (s *Server) handleResumeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractID(req.Params.URI, uriScheme+"resumes/")
	if id == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.History.GetResume(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting resume: %w", err)
	}
	return jsonResource(req.Params.URI, entry)
}

// handleJobResource returns the raw text of a saved job description.
func (s *Server) handleJobResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractID(req.Params.URI, uriScheme+"jobs/")
	if id == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	jd, err := s.ports.History.GetJobDescription(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting job description: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     jd.RawText,
		}},
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractID parses the numeric ID after prefix. Returns 0 if absent or invalid.
func extractID(uri, prefix string) int64 {
	if !strings.HasPrefix(uri, prefix) {
		return 0
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
