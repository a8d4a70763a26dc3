package driven

import (
	"context"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// TextExtractor turns a raw job description file into plain text.
// Each extractor handles specific MIME types (e.g., PDF, HTML).
type TextExtractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific extractors should return 50-89.
	// Fallback extractors should return 1-9.
	Priority() int

	// Extract returns the readable text of the document.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)
}

// ExtractorRegistry selects the appropriate extractor for a document.
type ExtractorRegistry interface {
	// Extract runs the best matching extractor for raw.MIMEType.
	// Returns domain.ErrInvalidInput if no extractor handles the type.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)

	// Register adds an extractor to the registry.
	Register(extractor TextExtractor)

	// SupportedMIMETypes returns all MIME types that can be extracted.
	SupportedMIMETypes() []string
}
