package extractors

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
	"github.com/custodia-labs/resumebuddy/internal/extractors/docx"
	"github.com/custodia-labs/resumebuddy/internal/extractors/html"
	"github.com/custodia-labs/resumebuddy/internal/extractors/pdf"
	"github.com/custodia-labs/resumebuddy/internal/extractors/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches documents to the highest priority extractor
// registered for their MIME type.
type Registry struct {
	mu     sync.RWMutex
	byMIME map[string][]driven.TextExtractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byMIME: make(map[string][]driven.TextExtractor),
	}
}

// DefaultRegistry returns a registry with every built-in extractor.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(html.New())
	r.Register(docx.New())
	r.Register(pdf.New())
	return r
}

// Register adds an extractor for each MIME type it supports.
func (r *Registry) Register(extractor driven.TextExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, mime := range extractor.SupportedMIMETypes() {
		list := append(r.byMIME[mime], extractor)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority() > list[j].Priority()
		})
		r.byMIME[mime] = list
	}
}

// Extract runs the best matching extractor for raw.MIMEType.
func (r *Registry) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	r.mu.RLock()
	list := r.byMIME[raw.MIMEType]
	r.mu.RUnlock()

	if len(list) == 0 {
		return "", fmt.Errorf("%w: unsupported file type %q", domain.ErrInvalidInput, raw.MIMEType)
	}
	return list[0].Extract(ctx, raw)
}

// SupportedMIMETypes returns all MIME types that can be extracted, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.byMIME))
	for mime := range r.byMIME {
		types = append(types, mime)
	}
	sort.Strings(types)
	return types
}
