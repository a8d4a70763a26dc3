package html

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles HTML documents.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract strips markup and returns one line per block element.
// Job boards wrap the posting in navigation, so only <main> or <article>
// is kept when present.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	content := string(raw.Content)
	if body := mainContent(content); body != "" {
		content = body
	}
	return StripHTML(content), nil
}

var (
	mainTag          = regexp.MustCompile(`(?is)<main[^>]*>(.*?)</main>`)
	articleTag       = regexp.MustCompile(`(?is)<article[^>]*>(.*?)</article>`)
	htmlComments     = regexp.MustCompile(`(?s)<!--.*?-->`)
	closeBlockTags   = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article|ul|ol)>`)
	openBlockTags    = regexp.MustCompile(`(?i)<(p|div|h[1-6]|tr|blockquote|pre|table|section|article|ul|ol)\b[^>]*>`)
	listItemTags     = regexp.MustCompile(`(?i)<li\b[^>]*>`)
	lineBreakTags    = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	allTags          = regexp.MustCompile(`<[^>]+>`)
	horizontalSpace  = regexp.MustCompile(`[ \t\x{00a0}]+`)
	repeatedNewlines = regexp.MustCompile(`\n{3,}`)
)

// dropTags match elements removed with their content.
var dropTags = func() []*regexp.Regexp {
	names := []string{"script", "style", "noscript", "head", "svg", "nav", "footer"}
	res := make([]*regexp.Regexp, 0, len(names))
	for _, name := range names {
		res = append(res, regexp.MustCompile(`(?is)<`+name+`\b[^>]*>.*?</`+name+`>`))
	}
	return res
}()

// mainContent returns the inner HTML of the first <main> or <article>.
func mainContent(content string) string {
	for _, re := range []*regexp.Regexp{mainTag, articleTag} {
		if m := re.FindStringSubmatch(content); len(m) > 1 && strings.TrimSpace(m[1]) != "" {
			return m[1]
		}
	}
	return ""
}

// StripHTML removes markup and returns readable text. List items are
// rendered as "- " bullets so requirement lists survive.
func StripHTML(content string) string {
	for _, re := range dropTags {
		content = re.ReplaceAllString(content, "")
	}
	content = htmlComments.ReplaceAllString(content, "")

	content = listItemTags.ReplaceAllString(content, "\n- ")
	content = openBlockTags.ReplaceAllString(content, "\n")
	content = closeBlockTags.ReplaceAllString(content, "\n")
	content = lineBreakTags.ReplaceAllString(content, "\n")

	content = allTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	content = horizontalSpace.ReplaceAllString(content, " ")
	content = repeatedNewlines.ReplaceAllString(content, "\n\n")

	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || line == "-" {
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}
