package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRubricWeightsSumToHundred(t *testing.T) {
	assert.Equal(t, 100, KeywordMatchWeight+FormattingWeight+JobAlignmentWeight)
}

func TestBand(t *testing.T) {
	tests := []struct {
		score float64
		want  ScoreBand
	}{
		{score: 100, want: BandPass},
		{score: 80, want: BandPass},
		{score: 79.9, want: BandWarn},
		{score: 60, want: BandWarn},
		{score: 59, want: BandFail},
		{score: 0, want: BandFail},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.score), "score %v", tt.score)
	}
}

func TestNewOptimizedResume(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	result := OptimizeResult{
		OptimizedSummary: "15+ years in platform engineering",
		OptimizedExperience: []OptimizedExperience{
			{Company: "Acme", Role: "Staff Engineer", Bullets: []string{"Architected X"}},
		},
		OptimizedSkills: []string{"Go"},
		Score: ResumeScore{
			Total: 85,
			Breakdown: RubricBreakdown{
				KeywordMatch: RubricSection{Score: 34, Findings: []string{"good"}},
			},
		},
		Suggestions: []string{"Add metrics"},
	}

	r := NewOptimizedResume(7, result, now)

	assert.Zero(t, r.ID)
	assert.Equal(t, int64(7), r.JobDescriptionID)
	assert.Equal(t, 85.0, r.Score)
	assert.Equal(t, result.Score.Breakdown, r.RubricBreakdown)
	assert.Equal(t, result.OptimizedExperience, r.OptimizedExperience)
	assert.Equal(t, now, r.CreatedAt)
}
