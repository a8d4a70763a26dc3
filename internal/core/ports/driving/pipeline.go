package driving

import (
	"context"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// Pipeline runs the two model-backed operations end to end:
// validate, build prompt, call the model, persist.
type Pipeline interface {
	// Optimize rewrites the stored profile against a job description.
	// The job description is persisted before the resume.
	Optimize(ctx context.Context, req domain.OptimizeRequest) (*domain.OptimizeOutcome, error)

	// GenerateCoverLetter writes a cover letter for pasted or saved job text.
	GenerateCoverLetter(ctx context.Context, req domain.CoverLetterRequest) (*domain.CoverLetterOutcome, error)

	// Busy reports whether op is currently in flight.
	Busy(op domain.Operation) bool
}
