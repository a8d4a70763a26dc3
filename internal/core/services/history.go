package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads stored pipeline results.
type HistoryService struct {
	jobs    driven.JobDescriptionStore
	resumes driven.ResumeStore
	letters driven.CoverLetterStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(
	jobs driven.JobDescriptionStore,
	resumes driven.ResumeStore,
	letters driven.CoverLetterStore,
) *HistoryService {
	return &HistoryService{
		jobs:    jobs,
		resumes: resumes,
		letters: letters,
	}
}

// ListResumes returns resumes newest first, joined with their job description header.
func (s *HistoryService) ListResumes(ctx context.Context) ([]domain.HistoryEntry, error) {
	resumes, err := s.resumes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}

	// Cache headers; many resumes can share a job description.
	headers := make(map[int64]*domain.JobDescription)
	entries := make([]domain.HistoryEntry, 0, len(resumes))
	for i := range resumes {
		jd, ok := headers[resumes[i].JobDescriptionID]
		if !ok {
			jd, err = s.lookupJob(ctx, resumes[i].JobDescriptionID)
			if err != nil {
				return nil, err
			}
			headers[resumes[i].JobDescriptionID] = jd
		}
		entries = append(entries, joinEntry(resumes[i], jd))
	}
	return entries, nil
}

// GetResume returns one resume with its job description header.
func (s *HistoryService) GetResume(ctx context.Context, id int64) (*domain.HistoryEntry, error) {
	resume, err := s.resumes.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get resume %d: %w", id, err)
	}
	jd, err := s.lookupJob(ctx, resume.JobDescriptionID)
	if err != nil {
		return nil, err
	}
	entry := joinEntry(*resume, jd)
	return &entry, nil
}

// DeleteResume removes a resume. The job description is kept.
func (s *HistoryService) DeleteResume(ctx context.Context, id int64) error {
	if err := s.resumes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete resume %d: %w", id, err)
	}
	return nil
}

// ListJobDescriptions returns job descriptions newest first.
func (s *HistoryService) ListJobDescriptions(ctx context.Context) ([]domain.JobDescription, error) {
	jds, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job descriptions: %w", err)
	}
	return jds, nil
}

// GetJobDescription returns one job description.
func (s *HistoryService) GetJobDescription(ctx context.Context, id int64) (*domain.JobDescription, error) {
	jd, err := s.jobs.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job description %d: %w", id, err)
	}
	return jd, nil
}

// ListCoverLetters returns cover letters newest first.
func (s *HistoryService) ListCoverLetters(ctx context.Context) ([]domain.CoverLetter, error) {
	letters, err := s.letters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cover letters: %w", err)
	}
	return letters, nil
}

// GetCoverLetter returns one cover letter.
func (s *HistoryService) GetCoverLetter(ctx context.Context, id int64) (*domain.CoverLetter, error) {
	letter, err := s.letters.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cover letter %d: %w", id, err)
	}
	return letter, nil
}

// lookupJob returns nil without error when the job description is gone.
func (s *HistoryService) lookupJob(ctx context.Context, id int64) (*domain.JobDescription, error) {
	jd, err := s.jobs.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get job description %d: %w", id, err)
	}
	return jd, nil
}

func joinEntry(resume domain.OptimizedResume, jd *domain.JobDescription) domain.HistoryEntry {
	entry := domain.HistoryEntry{OptimizedResume: resume}
	if jd != nil {
		entry.JDTitle = jd.Title
		entry.JDCompany = jd.Company
	}
	return entry
}
