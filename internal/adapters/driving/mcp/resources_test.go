package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		prefix   string
		expected int64
	}{
		{"valid", "resumebuddy://resumes/12", "resumebuddy://resumes/", 12},
		{"wrong prefix", "file://resumes/12", "resumebuddy://resumes/", 0},
		{"not a number", "resumebuddy://resumes/abc", "resumebuddy://resumes/", 0},
		{"zero", "resumebuddy://jobs/0", "resumebuddy://jobs/", 0},
		{"empty", "", "resumebuddy://jobs/", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractID(tt.uri, tt.prefix))
		})
	}
}

func TestServer_handleProfileResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns profile as json", func(t *testing.T) {
		profile := domain.NewProfile()
		profile.PersonalInfo.Name = "Ada Lovelace"
		profile.Skills = []string{"Go"}

		server := newTestServer(t, &Ports{Pipeline: &mockPipeline{}, Profile: &mockProfile{profile: &profile}})

		result, err := server.handleProfileResource(ctx, makeReadResourceRequest(profileURI))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var decoded domain.Profile
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &decoded))
		assert.Equal(t, "Ada Lovelace", decoded.PersonalInfo.Name)
		assert.Equal(t, []string{"Go"}, decoded.Skills)
	})

	t.Run("wraps service error", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Pipeline: &mockPipeline{},
			Profile:  &mockProfile{err: errors.New("disk gone")},
		})

		_, err := server.handleProfileResource(ctx, makeReadResourceRequest(profileURI))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting profile")
	})
}

func TestServer_handleResumeResource(t *testing.T) {
	ctx := context.Background()
	history := &mockHistory{
		entries: []domain.HistoryEntry{
			{OptimizedResume: domain.OptimizedResume{ID: 3, Score: 90}, JDTitle: "SRE"},
		},
	}
	server := newTestServer(t, &Ports{Pipeline: &mockPipeline{}, History: history})

	t.Run("found", func(t *testing.T) {
		result, err := server.handleResumeResource(ctx, makeReadResourceRequest("resumebuddy://resumes/3"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"jdTitle": "SRE"`)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := server.handleResumeResource(ctx, makeReadResourceRequest("resumebuddy://resumes/4"))
		assert.Error(t, err)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := server.handleResumeResource(ctx, makeReadResourceRequest("resumebuddy://resumes/x"))
		assert.Error(t, err)
	})
}

func TestServer_handleJobResource(t *testing.T) {
	ctx := context.Background()
	history := &mockHistory{
		jobs: []domain.JobDescription{{ID: 5, Title: "SRE", RawText: "Run the platform"}},
	}
	server := newTestServer(t, &Ports{Pipeline: &mockPipeline{}, History: history})

	result, err := server.handleJobResource(ctx, makeReadResourceRequest("resumebuddy://jobs/5"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	assert.Equal(t, "Run the platform", result.Contents[0].Text)

	_, err = server.handleJobResource(ctx, makeReadResourceRequest("resumebuddy://jobs/6"))
	assert.Error(t, err)
}
