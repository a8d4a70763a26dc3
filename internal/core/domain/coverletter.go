package domain

import "time"

// CoverLetterResult is the JSON object the model returns for a cover letter.
type CoverLetterResult struct {
	CoverLetter string   `json:"cover_letter"`
	KeyMatches  []string `json:"key_matches"`
}

// CoverLetter is a persisted cover letter. Immutable and never deleted.
type CoverLetter struct {
	ID               int64     `json:"id"`
	JobDescriptionID int64     `json:"jobDescriptionId"`
	Content          string    `json:"content"`
	KeyMatches       []string  `json:"keyMatches"`
	CreatedAt        time.Time `json:"createdAt"`
}
