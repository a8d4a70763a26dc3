package driving

import (
	"context"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// HistoryService reads and prunes stored pipeline results.
type HistoryService interface {
	// ListResumes returns resumes newest first, joined with their job description header.
	ListResumes(ctx context.Context) ([]domain.HistoryEntry, error)

	// GetResume returns one resume with its job description header.
	GetResume(ctx context.Context, id int64) (*domain.HistoryEntry, error)

	// DeleteResume removes a resume. The job description is kept.
	DeleteResume(ctx context.Context, id int64) error

	// ListJobDescriptions returns job descriptions newest first.
	ListJobDescriptions(ctx context.Context) ([]domain.JobDescription, error)

	// GetJobDescription returns one job description.
	GetJobDescription(ctx context.Context, id int64) (*domain.JobDescription, error)

	// ListCoverLetters returns cover letters newest first.
	ListCoverLetters(ctx context.Context) ([]domain.CoverLetter, error)

	// GetCoverLetter returns one cover letter.
	GetCoverLetter(ctx context.Context, id int64) (*domain.CoverLetter, error)
}
