package driven

import (
	"context"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// ProfileStore persists the singleton profile.
type ProfileStore interface {
	// Get retrieves the profile.
	// Returns domain.ErrNotFound if no profile has been saved.
	Get(ctx context.Context) (*domain.Profile, error)

	// Put overwrites the profile. Last write wins.
	Put(ctx context.Context, profile domain.Profile) error
}

// JobDescriptionStore persists job descriptions.
type JobDescriptionStore interface {
	// Add stores a job description and returns its new key.
	Add(ctx context.Context, jd *domain.JobDescription) (int64, error)

	// Get retrieves a job description by key.
	Get(ctx context.Context, id int64) (*domain.JobDescription, error)

	// List returns all job descriptions, newest first.
	List(ctx context.Context) ([]domain.JobDescription, error)
}

// ResumeStore persists optimized resumes.
type ResumeStore interface {
	// Add stores a resume and returns its new key.
	Add(ctx context.Context, resume *domain.OptimizedResume) (int64, error)

	// Get retrieves a resume by key.
	Get(ctx context.Context, id int64) (*domain.OptimizedResume, error)

	// List returns all resumes, newest first.
	List(ctx context.Context) ([]domain.OptimizedResume, error)

	// Delete removes a resume. Deleting a missing key is a no-op.
	// The referenced job description is not touched.
	Delete(ctx context.Context, id int64) error
}

// CoverLetterStore persists cover letters.
type CoverLetterStore interface {
	// Add stores a cover letter and returns its new key.
	Add(ctx context.Context, letter *domain.CoverLetter) (int64, error)

	// Get retrieves a cover letter by key.
	Get(ctx context.Context, id int64) (*domain.CoverLetter, error)

	// List returns all cover letters, newest first.
	List(ctx context.Context) ([]domain.CoverLetter, error)
}
