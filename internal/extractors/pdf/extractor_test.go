package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{"application/pdf"}, New().SupportedMIMETypes())
	assert.Equal(t, 50, New().Priority())
}

func TestExtract_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		raw  *domain.RawDocument
	}{
		{name: "nil", raw: nil},
		{name: "empty", raw: &domain.RawDocument{MIMEType: "application/pdf"}},
		{name: "not a pdf", raw: &domain.RawDocument{MIMEType: "application/pdf", Content: []byte("hello world")}},
		{name: "truncated header", raw: &domain.RawDocument{MIMEType: "application/pdf", Content: []byte("%PDF-1.4\n")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Extract(context.Background(), tt.raw)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
