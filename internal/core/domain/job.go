package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinJobTextLength is the content gate for job description text.
// Text must be strictly longer than this (after trimming) to run an operation.
const MinJobTextLength = 50

// Default titles used when persisting job descriptions.
const (
	DefaultJobTitle       = "Untitled"
	DefaultJobCompany     = "Unknown"
	CoverLetterJobTitle   = "Cover Letter JD"
	CoverLetterJobCompany = ""
)

// JobDescription is a pasted job posting.
// Created once per run and never mutated.
type JobDescription struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	RawText   string    `json:"rawText"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobTextLongEnough reports whether text passes the minimum-content gate.
// Length is counted in characters, not bytes.
func JobTextLongEnough(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) > MinJobTextLength
}
