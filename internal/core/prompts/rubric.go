package prompts

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// ActionVerbs groups the preferred bullet openers by category.
var ActionVerbs = struct {
	Leadership []string
	Technical  []string
	Sales      []string
	General    []string
}{
	Leadership: []string{
		"Directed", "Orchestrated", "Mobilized", "Spearheaded", "Championed",
		"Formulated", "Devised", "Architected",
	},
	Technical: []string{
		"Engineered", "Streamlined", "Optimized",
		"Interpreted", "Synthesized", "Quantified",
		"Forecasted", "Diagnosed", "Uncovered",
	},
	Sales: []string{
		"Negotiated", "Persuaded", "Articulated",
		"Amplified", "Boosted", "Accelerated", "Capitalized",
	},
	General: []string{
		"Achieved", "Attained", "Decreased", "Maximized", "Enhanced",
	},
}

// FormattingRules are the ATS layout guidelines shown to the user.
var FormattingRules = []string{
	"Use chronological or hybrid format",
	"Standard headings: Professional Experience, Education, Skills, Certifications",
	"Simple fonts: Arial, Calibri, Times New Roman (10-12pt)",
	"Standard bullet points, left-aligned text",
	"NO tables, images, graphics, headers/footers, or columns",
	"Max 2 pages, focus on last 10-15 years",
}

// SeniorExperienceRules are the guidelines for experienced candidates.
var SeniorExperienceRules = []string{
	"Lead with keyword-rich headline and summary",
	`Highlight years of experience upfront (e.g., "15+ years in...")`,
	"Showcase leadership achievements with metrics",
	"Use action verbs + quantifiable results in bullets",
	"Prioritize job-matching roles first",
	"List skills with specifics (tools, certifications), avoid generic lists",
}

// RubricCriterion is one weighted scoring criterion.
type RubricCriterion struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// Rubric lists the scoring criteria in display order.
var Rubric = []RubricCriterion{
	{Key: "keyword_match", Label: "Keyword Match", Weight: domain.KeywordMatchWeight},
	{Key: "formatting", Label: "Formatting", Weight: domain.FormattingWeight},
	{Key: "job_alignment", Label: "Job Alignment", Weight: domain.JobAlignmentWeight},
}

//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const optimizeSystemTemplate = `You are an expert ATS Resume Optimizer. Your single goal is to rewrite the user's resume content to maximize its ATS compatibility score against a specific Job Description, targeting 80%%+ match.

## RULES (Non-Negotiable)

### Action Verbs
Always start bullet points with strong action verbs. Prefer these categories:
- **Leadership**: %s
- **Technical**: %s
- **Sales**: %s
- **General**: %s
- NEVER use weak verbs like "responsible for", "helped", "assisted", "worked on".

### Senior Experience
- Highlight years of experience upfront in the summary (e.g., "15+ years in executive sales leadership").
- Every bullet must have a quantifiable metric (%%, $, count, timeframe).
- Prioritize roles and bullets that directly match the Job Description.

### Formatting
- Output must be plain text compatible. NO tables, NO columns, NO graphics.
- Use standard bullet points only.

### Keyword Strategy
- Extract exact keywords, phrases, job titles, and skills from the Job Description.
- Incorporate them naturally throughout summary, experience, and skills.
- Aim for 70-80%% keyword match rate. Do NOT stuff keywords unnaturally.
- Include both acronyms and full forms (e.g., "Enterprise Resource Planning (ERP)").

## SCORING RUBRIC
You must also grade the optimized resume using this rubric:
- **Keyword Match (40%%)**: Count job-specific terms and their frequency in context.
- **Formatting (20%%)**: Is the output plain-text clean? No tables/columns/graphics?
- **Job Alignment (40%%)**: Do experience level, skills/tools, and quantified achievements mirror the JD?

## OUTPUT FORMAT
You MUST respond with valid JSON only. No markdown, no code fences, no explanation text.
Use this exact structure:
{
  "optimized_summary": "string - the rewritten professional summary",
  "optimized_experience": [
    {
      "company": "string",
      "role": "string",
      "startDate": "string",
      "endDate": "string",
      "bullets": ["string - each bullet starts with an action verb and includes metrics"]
    }
  ],
  "optimized_skills": ["string - prioritized, job-relevant skills"],
  "score": {
    "total": number,
    "breakdown": {
      "keyword_match": { "score": number, "findings": ["string"] },
      "formatting": { "score": number, "findings": ["string"] },
      "job_alignment": { "score": number, "findings": ["string"] }
    }
  },
  "suggestions": ["string - top 3-5 specific improvements if score < 80"]
}`

// OptimizeSystemPrompt instructs the model to rewrite and grade a resume.
var OptimizeSystemPrompt = fmt.Sprintf(optimizeSystemTemplate,
	strings.Join(ActionVerbs.Leadership, ", "),
	strings.Join(ActionVerbs.Technical, ", "),
	strings.Join(ActionVerbs.Sales, ", "),
	strings.Join(ActionVerbs.General, ", "),
)

// CoverLetterSystemPrompt instructs the model to write a cover letter.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const CoverLetterSystemPrompt = `You are an expert cover letter writer. Your goal is to write a compelling, tailored cover letter that complements the ATS-optimized resume.

## RULES
- Address the specific job requirements from the Job Description
- Reference the candidate's relevant experience, projects, and skills from their profile
- Use a professional but personable tone
- Keep it concise: 3-4 paragraphs, under 400 words
- Highlight quantified achievements that match the JD
- Include a strong opening that hooks the reader
- End with a clear call to action

## OUTPUT FORMAT
You MUST respond with valid JSON only. No markdown, no code fences, no explanation text.
{
  "cover_letter": "string - the complete cover letter text with paragraph breaks as \n\n",
  "key_matches": ["string - top 3-5 JD requirements addressed in the letter"]
}`
