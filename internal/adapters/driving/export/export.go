// Package export renders a stored resume as a standalone document.
//
// Two formats are supported. The text format is a plain layout suited to
// pasting into application forms. The HTML format is a single-column,
// print-ready page that ATS parsers read cleanly.
package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// Format names an export format.
type Format string

// Export formats.
const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// defaultName is used when the profile has no name.
const defaultName = "Your Name"

//go:embed templates/resume.html
var templateFS embed.FS

var resumeTemplate = template.Must(template.ParseFS(templateFS, "templates/resume.html"))

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q (use text or html)", domain.ErrInvalidInput, name)
	}
}

// Write renders resume in the given format.
func Write(w io.Writer, format Format, resume *domain.OptimizedResume, info domain.PersonalInfo) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, Text(resume))
		return err
	case FormatHTML:
		return HTML(w, resume, info)
	default:
		return fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidInput, format)
	}
}

// Text returns the plain-text layout: summary, experience and skills.
func Text(resume *domain.OptimizedResume) string {
	var b strings.Builder
	b.WriteString("PROFESSIONAL SUMMARY\n")
	b.WriteString(resume.OptimizedSummary)
	b.WriteString("\n\nEXPERIENCE\n")
	for i, exp := range resume.OptimizedExperience {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s at %s (%s – %s)", exp.Role, exp.Company, exp.StartDate, exp.EndDate)
		for _, bullet := range exp.Bullets {
			b.WriteString("\n• ")
			b.WriteString(bullet)
		}
	}
	b.WriteString("\n\nSKILLS\n")
	b.WriteString(strings.Join(resume.OptimizedSkills, ", "))
	b.WriteString("\n")
	return b.String()
}

type htmlData struct {
	Name       string
	Contact    string
	Summary    string
	Experience []domain.OptimizedExperience
	Skills     string
}

// HTML writes the print-ready page. Model text is escaped.
func HTML(w io.Writer, resume *domain.OptimizedResume, info domain.PersonalInfo) error {
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = defaultName
	}
	data := htmlData{
		Name:       name,
		Contact:    contactLine(info),
		Summary:    resume.OptimizedSummary,
		Experience: resume.OptimizedExperience,
		Skills:     strings.Join(resume.OptimizedSkills, ", "),
	}
	if err := resumeTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render resume: %w", err)
	}
	return nil
}

// contactLine joins the non-empty email, phone and location.
func contactLine(info domain.PersonalInfo) string {
	parts := make([]string, 0, 3)
	for _, v := range []string{info.Email, info.Phone, info.Location} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}
