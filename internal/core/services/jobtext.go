package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driving"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

// Ensure JobTextLoader implements the interface.
var _ driving.JobTextLoader = (*JobTextLoader)(nil)

// MaxJobFileSize caps job description files read from disk.
const MaxJobFileSize = 10 << 20

// extensionMIMETypes maps accepted file extensions to extractor MIME types.
var extensionMIMETypes = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".html":     "text/html",
	".htm":      "text/html",
	".xhtml":    "application/xhtml+xml",
	".docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pdf":      "application/pdf",
}

// JobTextLoader reads job description files through the extractor registry.
type JobTextLoader struct {
	registry driven.ExtractorRegistry
}

// NewJobTextLoader creates a loader backed by registry.
func NewJobTextLoader(registry driven.ExtractorRegistry) *JobTextLoader {
	return &JobTextLoader{registry: registry}
}

// Load returns the plain text of the file at path.
func (l *JobTextLoader) Load(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := extensionMIMETypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported job description file %q (supported: %s)",
			domain.ErrInvalidInput, filepath.Base(path), strings.Join(l.SupportedExtensions(), ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat job description: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if info.Size() > MaxJobFileSize {
		return "", fmt.Errorf("%w: %s is larger than %d bytes", domain.ErrInvalidInput, path, MaxJobFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}

	text, err := l.registry.Extract(ctx, &domain.RawDocument{
		URI:      path,
		MIMEType: mimeType,
		Content:  content,
	})
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}

	logger.Debug("Loaded %d characters from %s (%s)", len(text), path, mimeType)
	return text, nil
}

// SupportedExtensions lists the file extensions that can be loaded.
func (l *JobTextLoader) SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionMIMETypes))
	for ext := range extensionMIMETypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
