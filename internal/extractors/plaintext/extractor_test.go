package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	assert.Contains(t, mimeTypes, "text/plain")
	assert.Contains(t, mimeTypes, "text/markdown")
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 5, New().Priority())
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "plain", content: "Senior Go Engineer", want: "Senior Go Engineer"},
		{name: "crlf", content: "line one\r\nline two\rline three", want: "line one\nline two\nline three"},
		{name: "bom", content: "\ufeffHello", want: "Hello"},
		{name: "markdown kept", content: "## Requirements\n- Go", want: "## Requirements\n- Go"},
		{name: "empty", content: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Extract(context.Background(), &domain.RawDocument{
				URI:      "jd.txt",
				MIMEType: "text/plain",
				Content:  []byte(tt.content),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_Errors(t *testing.T) {
	_, err := New().Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = New().Extract(context.Background(), &domain.RawDocument{Content: []byte{0xff, 0xfe, 0xfd}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.TextExtractor = (*Extractor)(nil)
}
