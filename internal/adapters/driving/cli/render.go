package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/prompts"
)

const timeLayout = "2006-01-02 15:04"

// resumeView is the subset of a resume that is rendered.
type resumeView struct {
	summary     string
	experience  []domain.OptimizedExperience
	skills      []string
	total       float64
	breakdown   domain.RubricBreakdown
	suggestions []string
}

func viewFromResult(r domain.OptimizeResult) resumeView {
	return resumeView{
		summary:     r.OptimizedSummary,
		experience:  r.OptimizedExperience,
		skills:      r.OptimizedSkills,
		total:       r.Score.Total,
		breakdown:   r.Score.Breakdown,
		suggestions: r.Suggestions,
	}
}

func viewFromResume(r domain.OptimizedResume) resumeView {
	return resumeView{
		summary:     r.OptimizedSummary,
		experience:  r.OptimizedExperience,
		skills:      r.OptimizedSkills,
		total:       r.Score,
		breakdown:   r.RubricBreakdown,
		suggestions: r.Suggestions,
	}
}

// renderScore prints the total and one bar per rubric section.
func renderScore(cmd *cobra.Command, st *styles.Styles, v resumeView) {
	band := domain.Band(v.total)
	cmd.Printf("%s %s %s\n",
		st.Label.Render("ATS Score:"),
		st.Score(v.total),
		st.BandStyle(band).Render("["+strings.ToUpper(string(band))+"]"))

	sections := map[string]domain.RubricSection{
		"keyword_match": v.breakdown.KeywordMatch,
		"formatting":    v.breakdown.Formatting,
		"job_alignment": v.breakdown.JobAlignment,
	}
	for _, criterion := range prompts.Rubric {
		section := sections[criterion.Key]
		cmd.Printf("  %-14s %s\n", criterion.Label, st.SectionBar(section.Score, criterion.Weight))
		for _, finding := range section.Findings {
			cmd.Printf("    %s\n", st.Muted.Render("- "+finding))
		}
	}
}

// renderResume prints a rewritten resume with its score.
func renderResume(cmd *cobra.Command, st *styles.Styles, v resumeView) {
	renderScore(cmd, st, v)
	cmd.Println()

	cmd.Println(st.Subtitle.Render("Summary"))
	cmd.Printf("  %s\n\n", v.summary)

	cmd.Println(st.Subtitle.Render("Experience"))
	for _, exp := range v.experience {
		cmd.Printf("  %s, %s %s\n", exp.Role, exp.Company,
			st.Muted.Render(fmt.Sprintf("(%s – %s)", exp.StartDate, exp.EndDate)))
		for _, bullet := range exp.Bullets {
			cmd.Printf("    • %s\n", bullet)
		}
	}
	cmd.Println()

	cmd.Println(st.Subtitle.Render("Skills"))
	cmd.Printf("  %s\n", strings.Join(v.skills, ", "))

	if len(v.suggestions) > 0 {
		cmd.Println()
		cmd.Println(st.Subtitle.Render("Suggestions"))
		for i, s := range v.suggestions {
			cmd.Printf("  %d. %s\n", i+1, s)
		}
	}
}

// renderCoverLetter prints a letter in a box followed by its key matches.
func renderCoverLetter(cmd *cobra.Command, st *styles.Styles, content string, keyMatches []string) {
	cmd.Println(st.Box.Render(content))
	if len(keyMatches) > 0 {
		cmd.Printf("\n%s %s\n", st.Label.Render("Key matches:"), strings.Join(keyMatches, ", "))
	}
}

// jobLabel formats a job description header for listings.
func jobLabel(title, company string) string {
	switch {
	case title == "" && company == "":
		return "(deleted job description)"
	case company == "":
		return title
	default:
		return title + " @ " + company
	}
}
