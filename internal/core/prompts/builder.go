package prompts

import (
	"strings"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// coverLetterBulletLimit caps the bullets quoted per role in a cover letter prompt.
const coverLetterBulletLimit = 3

// BuildOptimizePrompt renders the user prompt for a resume optimization.
// jobText is embedded verbatim.
func BuildOptimizePrompt(
	jobText, summary string,
	experience []domain.Experience,
	skills []string,
	projects []domain.Project,
) string {
	roles := make([]string, 0, len(experience))
	for _, e := range experience {
		var b strings.Builder
		b.WriteString("### " + e.Role + " at " + e.Company + " (" + e.StartDate + " – " + e.EndDate + ")\n")
		bullets := make([]string, 0, len(e.Bullets))
		for _, bullet := range e.Bullets {
			bullets = append(bullets, "- "+bullet)
		}
		b.WriteString(strings.Join(bullets, "\n"))
		roles = append(roles, b.String())
	}

	projectsText := ""
	if len(projects) > 0 {
		entries := make([]string, 0, len(projects))
		for _, p := range projects {
			var b strings.Builder
			b.WriteString("**" + p.Name + "**")
			if p.URL != "" {
				b.WriteString(" (" + p.URL + ")")
			}
			b.WriteString("\n" + p.Description)
			b.WriteString("\nTech: " + strings.Join(p.Technologies, ", ") + "\n")
			highlights := make([]string, 0, len(p.Highlights))
			for _, h := range p.Highlights {
				highlights = append(highlights, "- "+h)
			}
			b.WriteString(strings.Join(highlights, "\n"))
			entries = append(entries, b.String())
		}
		projectsText = "\n\n### Key Projects\n" + strings.Join(entries, "\n\n")
	}

	return "## JOB DESCRIPTION\n" +
		jobText + "\n\n" +
		"## MY CURRENT RESUME\n\n" +
		"### Professional Summary\n" +
		summary + "\n\n" +
		"### Experience\n" +
		strings.Join(roles, "\n\n") + projectsText + "\n\n" +
		"### Skills\n" +
		strings.Join(skills, ", ") + "\n\n" +
		"---\n" +
		"Optimize my resume for the above Job Description. Follow all rules and return valid JSON only."
}

// BuildCoverLetterPrompt renders the user prompt for a cover letter.
// Only the first three bullets of each role are included.
func BuildCoverLetterPrompt(
	jobText, summary string,
	experience []domain.Experience,
	skills []string,
	projects []domain.Project,
) string {
	roles := make([]string, 0, len(experience))
	for _, e := range experience {
		bullets := e.Bullets
		if len(bullets) > coverLetterBulletLimit {
			bullets = bullets[:coverLetterBulletLimit]
		}
		roles = append(roles, e.Role+" at "+e.Company+" ("+e.StartDate+" – "+e.EndDate+"): "+strings.Join(bullets, "; "))
	}

	projectsText := ""
	if len(projects) > 0 {
		entries := make([]string, 0, len(projects))
		for _, p := range projects {
			entries = append(entries, "- "+p.Name+": "+p.Description)
		}
		projectsText = "\n\nKey Projects:\n" + strings.Join(entries, "\n")
	}

	return "## JOB DESCRIPTION\n" +
		jobText + "\n\n" +
		"## CANDIDATE PROFILE\n\n" +
		"Summary: " + summary + "\n\n" +
		"Experience:\n" +
		strings.Join(roles, "\n") + projectsText + "\n\n" +
		"Skills: " + strings.Join(skills, ", ") + "\n\n" +
		"---\n" +
		"Write a tailored cover letter for this Job Description. Return valid JSON only."
}
