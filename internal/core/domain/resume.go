package domain

import "time"

// Rubric weights out of a total of 100.
const (
	KeywordMatchWeight = 40
	FormattingWeight   = 20
	JobAlignmentWeight = 40
)

// PassingScore is the target match score.
const PassingScore = 80

// WarningScore is the lower bound of the warning band.
const WarningScore = 60

// ScoreBand classifies a match score for display.
type ScoreBand string

// Score bands.
const (
	BandPass ScoreBand = "pass"
	BandWarn ScoreBand = "warn"
	BandFail ScoreBand = "fail"
)

// Band returns the display band for a score.
func Band(score float64) ScoreBand {
	switch {
	case score >= PassingScore:
		return BandPass
	case score >= WarningScore:
		return BandWarn
	default:
		return BandFail
	}
}

// OptimizedExperience is one rewritten role.
type OptimizedExperience struct {
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Bullets   []string `json:"bullets"`
}

// RubricSection is the score and findings for one rubric criterion.
type RubricSection struct {
	Score    float64  `json:"score"`
	Findings []string `json:"findings"`
}

// RubricBreakdown holds the three rubric sections.
type RubricBreakdown struct {
	KeywordMatch RubricSection `json:"keyword_match"`
	Formatting   RubricSection `json:"formatting"`
	JobAlignment RubricSection `json:"job_alignment"`
}

// ResumeScore is the model's self-assessed grade.
type ResumeScore struct {
	Total     float64         `json:"total"`
	Breakdown RubricBreakdown `json:"breakdown"`
}

// OptimizeResult is the JSON object the model returns for an optimize call.
// It is decoded as-is; no field is validated.
type OptimizeResult struct {
	OptimizedSummary    string                `json:"optimized_summary"`
	OptimizedExperience []OptimizedExperience `json:"optimized_experience"`
	OptimizedSkills     []string              `json:"optimized_skills"`
	Score               ResumeScore           `json:"score"`
	Suggestions         []string              `json:"suggestions"`
}

// OptimizedResume is a persisted optimization result.
// Immutable once stored.
type OptimizedResume struct {
	ID                  int64                 `json:"id"`
	JobDescriptionID    int64                 `json:"jobDescriptionId"`
	OptimizedSummary    string                `json:"optimizedSummary"`
	OptimizedExperience []OptimizedExperience `json:"optimizedExperience"`
	OptimizedSkills     []string              `json:"optimizedSkills"`
	Score               float64               `json:"score"`
	RubricBreakdown     RubricBreakdown       `json:"rubricBreakdown"`
	Suggestions         []string              `json:"suggestions"`
	CreatedAt           time.Time             `json:"createdAt"`
}

// NewOptimizedResume builds the record persisted for a result.
func NewOptimizedResume(jobDescriptionID int64, result OptimizeResult, createdAt time.Time) *OptimizedResume {
	return &OptimizedResume{
		JobDescriptionID:    jobDescriptionID,
		OptimizedSummary:    result.OptimizedSummary,
		OptimizedExperience: result.OptimizedExperience,
		OptimizedSkills:     result.OptimizedSkills,
		Score:               result.Score.Total,
		RubricBreakdown:     result.Score.Breakdown,
		Suggestions:         result.Suggestions,
		CreatedAt:           createdAt,
	}
}

// HistoryEntry is a stored resume joined with its job description header.
// JDTitle and JDCompany are empty when the job description is missing.
type HistoryEntry struct {
	OptimizedResume
	JDTitle   string `json:"jdTitle"`
	JDCompany string `json:"jdCompany"`
}
