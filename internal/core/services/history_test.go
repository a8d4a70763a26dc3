package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

func TestHistoryService_ResumesJoinedWithJob(t *testing.T) {
	ctx := context.Background()
	jobs := memory.NewJobDescriptionStore()
	resumes := memory.NewResumeStore()
	svc := NewHistoryService(jobs, resumes, memory.NewCoverLetterStore())

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	jdID, err := jobs.Add(ctx, &domain.JobDescription{Title: "SRE", Company: "Globex", RawText: "x", CreatedAt: base})
	require.NoError(t, err)

	older, err := resumes.Add(ctx, &domain.OptimizedResume{JobDescriptionID: jdID, Score: 70, CreatedAt: base})
	require.NoError(t, err)
	newer, err := resumes.Add(ctx, &domain.OptimizedResume{JobDescriptionID: jdID, Score: 90, CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	orphan, err := resumes.Add(ctx, &domain.OptimizedResume{JobDescriptionID: 999, Score: 50, CreatedAt: base.Add(-time.Hour)})
	require.NoError(t, err)

	entries, err := svc.ListResumes(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, newer, entries[0].ID)
	assert.Equal(t, older, entries[1].ID)
	assert.Equal(t, orphan, entries[2].ID)
	assert.Equal(t, "SRE", entries[0].JDTitle)
	assert.Equal(t, "Globex", entries[0].JDCompany)
	assert.Empty(t, entries[2].JDTitle)
	assert.Empty(t, entries[2].JDCompany)

	entry, err := svc.GetResume(ctx, newer)
	require.NoError(t, err)
	assert.Equal(t, "SRE", entry.JDTitle)
	assert.InDelta(t, 90, entry.Score, 0)
}

func TestHistoryService_DeleteKeepsJob(t *testing.T) {
	ctx := context.Background()
	jobs := memory.NewJobDescriptionStore()
	resumes := memory.NewResumeStore()
	svc := NewHistoryService(jobs, resumes, memory.NewCoverLetterStore())

	jdID, err := jobs.Add(ctx, &domain.JobDescription{Title: "t", RawText: "x"})
	require.NoError(t, err)
	id, err := resumes.Add(ctx, &domain.OptimizedResume{JobDescriptionID: jdID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResume(ctx, id))

	_, err = svc.GetResume(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetJobDescription(ctx, jdID)
	assert.NoError(t, err)
}

func TestHistoryService_JobsAndLetters(t *testing.T) {
	ctx := context.Background()
	jobs := memory.NewJobDescriptionStore()
	letters := memory.NewCoverLetterStore()
	svc := NewHistoryService(jobs, memory.NewResumeStore(), letters)

	jdID, err := jobs.Add(ctx, &domain.JobDescription{Title: domain.CoverLetterJobTitle, RawText: "x"})
	require.NoError(t, err)
	letterID, err := letters.Add(ctx, &domain.CoverLetter{JobDescriptionID: jdID, Content: "Dear team", KeyMatches: []string{"Go"}})
	require.NoError(t, err)

	jds, err := svc.ListJobDescriptions(ctx)
	require.NoError(t, err)
	assert.Len(t, jds, 1)

	all, err := svc.ListCoverLetters(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	letter, err := svc.GetCoverLetter(ctx, letterID)
	require.NoError(t, err)
	assert.Equal(t, "Dear team", letter.Content)
	assert.Equal(t, []string{"Go"}, letter.KeyMatches)

	_, err = svc.GetCoverLetter(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetJobDescription(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
