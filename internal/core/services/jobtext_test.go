package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/extractors"
)

func writeJobFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestJobTextLoader_Load(t *testing.T) {
	loader := NewJobTextLoader(extractors.DefaultRegistry())
	ctx := context.Background()

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{name: "text", file: "jd.txt", content: "Go engineer\r\nRemote", want: "Go engineer\nRemote"},
		{name: "markdown", file: "jd.MD", content: "## Go engineer", want: "## Go engineer"},
		{name: "html", file: "jd.html", content: "<html><body><h1>Go engineer</h1><p>Remote</p></body></html>", want: "Go engineer\nRemote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loader.Load(ctx, writeJobFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobTextLoader_Errors(t *testing.T) {
	loader := NewJobTextLoader(extractors.DefaultRegistry())
	ctx := context.Background()

	_, err := loader.Load(ctx, writeJobFile(t, "jd.png", "x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = loader.Load(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := filepath.Join(t.TempDir(), "folder.txt")
	require.NoError(t, os.Mkdir(dir, 0o755))
	_, err = loader.Load(ctx, dir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = loader.Load(ctx, writeJobFile(t, "broken.pdf", "not a pdf"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobTextLoader_SupportedExtensions(t *testing.T) {
	exts := NewJobTextLoader(extractors.DefaultRegistry()).SupportedExtensions()

	assert.Contains(t, exts, ".pdf")
	assert.Contains(t, exts, ".docx")
	assert.Contains(t, exts, ".md")
	assert.IsIncreasing(t, exts)
}
