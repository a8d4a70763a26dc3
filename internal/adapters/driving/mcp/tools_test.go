package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	if ports.Settings == nil {
		ports.Settings = &mockSettings{apiKey: "test-key"}
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleOptimize(t *testing.T) {
	ctx := context.Background()

	t.Run("passes stored key and input to pipeline", func(t *testing.T) {
		pipeline := &mockPipeline{
			optimizeOutcome: &domain.OptimizeOutcome{
				JobDescriptionID: 3,
				ResumeID:         7,
				Result: domain.OptimizeResult{
					OptimizedSummary: "Go engineer",
					OptimizedSkills:  []string{"Go"},
					Score:            domain.ResumeScore{Total: 85},
					Suggestions:      []string{"Add metrics"},
				},
			},
		}
		server := newTestServer(t, &Ports{Pipeline: pipeline})

		result, output, err := server.handleOptimize(ctx, nil, OptimizeInput{
			JobText: "Senior Go engineer",
			Title:   "SWE",
			Company: "Acme",
		})

		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "test-key", pipeline.lastOptimize.APIKey)
		assert.Equal(t, "Senior Go engineer", pipeline.lastOptimize.JobText)
		assert.Equal(t, "SWE", pipeline.lastOptimize.JobTitle)
		assert.Equal(t, "Acme", pipeline.lastOptimize.JobCompany)

		assert.Equal(t, int64(7), output.ResumeID)
		assert.Equal(t, int64(3), output.JobDescriptionID)
		assert.InDelta(t, 85, output.Score, 0.001)
		assert.Equal(t, string(domain.BandPass), output.Band)
		assert.Equal(t, "Go engineer", output.OptimizedSummary)
		assert.Equal(t, []string{"Add metrics"}, output.Suggestions)
	})

	t.Run("returns pipeline error", func(t *testing.T) {
		pipeline := &mockPipeline{err: domain.NewValidationError("API key is not set")}
		server := newTestServer(t, &Ports{Pipeline: pipeline})

		_, _, err := server.handleOptimize(ctx, nil, OptimizeInput{JobText: "x"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestServer_handleCoverLetter(t *testing.T) {
	ctx := context.Background()

	t.Run("saved job description", func(t *testing.T) {
		pipeline := &mockPipeline{
			coverLetterOutcome: &domain.CoverLetterOutcome{
				JobDescriptionID: 4,
				CoverLetterID:    9,
				Result: domain.CoverLetterResult{
					CoverLetter: "Dear team",
					KeyMatches:  []string{"Go"},
				},
			},
		}
		server := newTestServer(t, &Ports{Pipeline: pipeline})

		_, output, err := server.handleCoverLetter(ctx, nil, CoverLetterInput{SavedJobDescriptionID: 4})

		require.NoError(t, err)
		assert.Equal(t, int64(4), pipeline.lastCoverLetter.SavedJobDescriptionID)
		assert.Equal(t, "test-key", pipeline.lastCoverLetter.APIKey)
		assert.Equal(t, int64(9), output.CoverLetterID)
		assert.Equal(t, "Dear team", output.CoverLetter)
		assert.Equal(t, []string{"Go"}, output.KeyMatches)
	})

	t.Run("returns pipeline error", func(t *testing.T) {
		pipeline := &mockPipeline{err: &domain.ProviderError{StatusCode: 500, Body: "boom"}}
		server := newTestServer(t, &Ports{Pipeline: pipeline})

		_, _, err := server.handleCoverLetter(ctx, nil, CoverLetterInput{JobText: "text"})

		assert.ErrorIs(t, err, domain.ErrProvider)
	})
}

func TestServer_handleListHistory(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	history := &mockHistory{
		entries: []domain.HistoryEntry{
			{
				OptimizedResume: domain.OptimizedResume{ID: 2, JobDescriptionID: 5, Score: 72, CreatedAt: created},
				JDTitle:         "Backend Engineer",
				JDCompany:       "Acme",
			},
			{
				OptimizedResume: domain.OptimizedResume{ID: 1, JobDescriptionID: 99, Score: 40, CreatedAt: created},
			},
		},
	}
	server := newTestServer(t, &Ports{Pipeline: &mockPipeline{}, History: history})

	_, output, err := server.handleListHistory(ctx, nil, HistoryInput{})

	require.NoError(t, err)
	require.Equal(t, 2, output.Count)
	assert.Equal(t, int64(2), output.Resumes[0].ResumeID)
	assert.Equal(t, "Backend Engineer", output.Resumes[0].Title)
	assert.Equal(t, "2026-03-01T12:00:00Z", output.Resumes[0].CreatedAt)
	assert.Empty(t, output.Resumes[1].Title)
	assert.Empty(t, output.Resumes[1].Company)
}
