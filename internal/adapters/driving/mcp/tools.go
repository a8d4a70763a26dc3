package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// OptimizeInput is the input schema for the optimize_resume tool.
type OptimizeInput struct {
	JobText string `json:"job_text" jsonschema:"the full job description text (more than 50 characters)"`
	Title   string `json:"title,omitempty" jsonschema:"job title (default Untitled)"`
	Company string `json:"company,omitempty" jsonschema:"company name (default Unknown)"`
}

// OptimizeOutput is the output schema for the optimize_resume tool.
type OptimizeOutput struct {
	ResumeID            int64                        `json:"resume_id"`
	JobDescriptionID    int64                        `json:"job_description_id"`
	Score               float64                      `json:"score"`
	Band                string                       `json:"band"`
	Breakdown           domain.RubricBreakdown       `json:"breakdown"`
	OptimizedSummary    string                       `json:"optimized_summary"`
	OptimizedExperience []domain.OptimizedExperience `json:"optimized_experience"`
	OptimizedSkills     []string                     `json:"optimized_skills"`
	Suggestions         []string                     `json:"suggestions"`
}

// CoverLetterInput is the input schema for the generate_cover_letter tool.
type CoverLetterInput struct {
	JobText               string `json:"job_text,omitempty" jsonschema:"the job description text, ignored when saved_job_description_id is set"`
	SavedJobDescriptionID int64  `json:"saved_job_description_id,omitempty" jsonschema:"ID of a job description already in history"`
}

// CoverLetterOutput is the output schema for the generate_cover_letter tool.
type CoverLetterOutput struct {
	CoverLetterID    int64    `json:"cover_letter_id"`
	JobDescriptionID int64    `json:"job_description_id"`
	CoverLetter      string   `json:"cover_letter"`
	KeyMatches       []string `json:"key_matches"`
}

// HistoryInput is the input schema for the list_history tool.
type HistoryInput struct{}

// HistoryOutput is the output schema for the list_history tool.
type HistoryOutput struct {
	Resumes []HistoryItem `json:"resumes"`
	Count   int           `json:"count"`
}

// HistoryItem represents a single stored resume.
type HistoryItem struct {
	ResumeID         int64   `json:"resume_id"`
	JobDescriptionID int64   `json:"job_description_id"`
	Title            string  `json:"title"`
	Company          string  `json:"company"`
	Score            float64 `json:"score"`
	CreatedAt        string  `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "optimize_resume",
		Description: "Rewrite the stored master profile against a job description and score it on a 100 point ATS rubric",
	}, s.handleOptimize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_cover_letter",
		Description: "Write a 250-400 word cover letter from the master profile for a job description",
	}, s.handleCoverLetter)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_history",
			Description: "List optimized resumes, newest first",
		}, s.handleListHistory)
	}
}

// handleOptimize handles the optimize_resume tool invocation.
func (s *Server) handleOptimize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OptimizeInput,
) (*mcp.CallToolResult, OptimizeOutput, error) {
	outcome, err := s.ports.Pipeline.Optimize(ctx, domain.OptimizeRequest{
		APIKey:     s.ports.Settings.APIKey(),
		JobTitle:   input.Title,
		JobCompany: input.Company,
		JobText:    input.JobText,
	})
	if err != nil {
		return nil, OptimizeOutput{}, err
	}

	r := outcome.Result
	return nil, OptimizeOutput{
		ResumeID:            outcome.ResumeID,
		JobDescriptionID:    outcome.JobDescriptionID,
		Score:               r.Score.Total,
		Band:                string(domain.Band(r.Score.Total)),
		Breakdown:           breakdownOrEmpty(r.Score.Breakdown),
		OptimizedSummary:    r.OptimizedSummary,
		OptimizedExperience: experienceOrEmpty(r.OptimizedExperience),
		OptimizedSkills:     orEmpty(r.OptimizedSkills),
		Suggestions:         orEmpty(r.Suggestions),
	}, nil
}

// handleCoverLetter handles the generate_cover_letter tool invocation.
func (s *Server) handleCoverLetter(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CoverLetterInput,
) (*mcp.CallToolResult, CoverLetterOutput, error) {
	outcome, err := s.ports.Pipeline.GenerateCoverLetter(ctx, domain.CoverLetterRequest{
		APIKey:                s.ports.Settings.APIKey(),
		JobText:               input.JobText,
		SavedJobDescriptionID: input.SavedJobDescriptionID,
	})
	if err != nil {
		return nil, CoverLetterOutput{}, err
	}

	return nil, CoverLetterOutput{
		CoverLetterID:    outcome.CoverLetterID,
		JobDescriptionID: outcome.JobDescriptionID,
		CoverLetter:      outcome.Result.CoverLetter,
		KeyMatches:       orEmpty(outcome.Result.KeyMatches),
	}, nil
}

// handleListHistory handles the list_history tool invocation.
func (s *Server) handleListHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	entries, err := s.ports.History.ListResumes(ctx)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Resumes: make([]HistoryItem, len(entries)),
		Count:   len(entries),
	}
	for i := range entries {
		output.Resumes[i] = HistoryItem{
			ResumeID:         entries[i].ID,
			JobDescriptionID: entries[i].JobDescriptionID,
			Title:            entries[i].JDTitle,
			Company:          entries[i].JDCompany,
			Score:            entries[i].Score,
			CreatedAt:        entries[i].CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return nil, output, nil
}

// Output schemas declare arrays, so a list the model left out or sent as
// null is returned as an empty array.

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func experienceOrEmpty(roles []domain.OptimizedExperience) []domain.OptimizedExperience {
	out := make([]domain.OptimizedExperience, len(roles))
	for i, role := range roles {
		role.Bullets = orEmpty(role.Bullets)
		out[i] = role
	}
	return out
}

func breakdownOrEmpty(b domain.RubricBreakdown) domain.RubricBreakdown {
	b.KeywordMatch.Findings = orEmpty(b.KeywordMatch.Findings)
	b.Formatting.Findings = orEmpty(b.Formatting.Findings)
	b.JobAlignment.Findings = orEmpty(b.JobAlignment.Findings)
	return b
}
