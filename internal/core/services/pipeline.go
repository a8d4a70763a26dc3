package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driving"
	"github.com/custodia-labs/resumebuddy/internal/core/prompts"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Pipeline = (*Pipeline)(nil)

// Pipeline orchestrates the optimize and cover letter operations.
// It holds no user state; the API key arrives with each request and the
// profile is read from the ProfileStore.
type Pipeline struct {
	profiles driven.ProfileStore
	jobs     driven.JobDescriptionStore
	resumes  driven.ResumeStore
	letters  driven.CoverLetterStore
	gateway  driven.ModelGateway
	now      func() time.Time

	// In-flight tracking
	mu       sync.Mutex
	inFlight map[domain.Operation]bool
}

// NewPipeline creates a new pipeline orchestrator.
func NewPipeline(
	profiles driven.ProfileStore,
	jobs driven.JobDescriptionStore,
	resumes driven.ResumeStore,
	letters driven.CoverLetterStore,
	gateway driven.ModelGateway,
) *Pipeline {
	return &Pipeline{
		profiles: profiles,
		jobs:     jobs,
		resumes:  resumes,
		letters:  letters,
		gateway:  gateway,
		now:      time.Now,
		inFlight: make(map[domain.Operation]bool),
	}
}

// Busy reports whether op is currently in flight.
func (p *Pipeline) Busy(op domain.Operation) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight[op]
}

// begin marks op as in flight, failing fast if it already is.
func (p *Pipeline) begin(op domain.Operation) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inFlight[op] {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrOperationInProgress)
	}
	p.inFlight[op] = true
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.inFlight, op)
	}, nil
}

// Optimize rewrites the stored profile against a job description and
// persists the job description followed by the resume.
func (p *Pipeline) Optimize(ctx context.Context, req domain.OptimizeRequest) (*domain.OptimizeOutcome, error) {
	done, err := p.begin(domain.OperationOptimize)
	if err != nil {
		return nil, err
	}
	defer done()

	logger.Section("Optimize")

	// 1. Validate inputs before any network or write
	profile, err := p.validate(ctx, req.APIKey, req.JobText)
	if err != nil {
		return nil, err
	}

	// 2. Build the prompt from the untrimmed job text
	userPrompt := prompts.BuildOptimizePrompt(
		req.JobText, profile.Summary, profile.Experience, profile.Skills, profile.Projects)
	logger.Debug("Prompt: %d characters, %d roles, %d projects",
		len(userPrompt), len(profile.Experience), len(profile.Projects))

	// 3. Call the model
	var result domain.OptimizeResult
	started := time.Now()
	if err := p.gateway.Generate(ctx, domain.GenerateRequest{
		APIKey:       req.APIKey,
		SystemPrompt: prompts.OptimizeSystemPrompt,
		UserPrompt:   userPrompt,
		Config:       domain.OptimizeGenerationConfig(),
	}, &result); err != nil {
		return nil, fmt.Errorf("generate resume: %w", err)
	}
	logger.Stage("Model call", started)

	// 4. Persist the job description
	jd := &domain.JobDescription{
		Title:     orDefault(req.JobTitle, domain.DefaultJobTitle),
		Company:   orDefault(req.JobCompany, domain.DefaultJobCompany),
		RawText:   req.JobText,
		CreatedAt: p.now(),
	}
	jdID, err := p.jobs.Add(ctx, jd)
	if err != nil {
		return nil, fmt.Errorf("save job description: %w", err)
	}

	// 5. Persist the resume referencing it
	resumeID, err := p.resumes.Add(ctx, domain.NewOptimizedResume(jdID, result, p.now()))
	if err != nil {
		logger.Warn("Job description %d kept without a resume", jdID)
		return nil, fmt.Errorf("save resume: %w", err)
	}

	logger.Info("Optimized resume %d scored %v for job description %d", resumeID, result.Score.Total, jdID)
	return &domain.OptimizeOutcome{
		Result:           result,
		JobDescriptionID: jdID,
		ResumeID:         resumeID,
	}, nil
}

// GenerateCoverLetter writes a cover letter for pasted or saved job text.
// A saved job description is reused; pasted text creates a new one after
// the model call succeeds.
func (p *Pipeline) GenerateCoverLetter(
	ctx context.Context,
	req domain.CoverLetterRequest,
) (*domain.CoverLetterOutcome, error) {
	done, err := p.begin(domain.OperationCoverLetter)
	if err != nil {
		return nil, err
	}
	defer done()

	logger.Section("Cover Letter")

	// 1. Resolve the effective job text
	jobText := req.JobText
	var saved *domain.JobDescription
	if req.SavedJobDescriptionID > 0 {
		saved, err = p.jobs.Get(ctx, req.SavedJobDescriptionID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("saved job description %d does not exist", req.SavedJobDescriptionID)
		}
		if err != nil {
			return nil, fmt.Errorf("load job description: %w", err)
		}
		jobText = saved.RawText
		logger.Debug("Using saved job description %d", saved.ID)
	}

	// 2. Validate inputs
	profile, err := p.validate(ctx, req.APIKey, jobText)
	if err != nil {
		return nil, err
	}

	// 3. Build the prompt and call the model
	userPrompt := prompts.BuildCoverLetterPrompt(
		jobText, profile.Summary, profile.Experience, profile.Skills, profile.Projects)

	var result domain.CoverLetterResult
	started := time.Now()
	if err := p.gateway.Generate(ctx, domain.GenerateRequest{
		APIKey:       req.APIKey,
		SystemPrompt: prompts.CoverLetterSystemPrompt,
		UserPrompt:   userPrompt,
		Config:       domain.CoverLetterGenerationConfig(),
	}, &result); err != nil {
		return nil, fmt.Errorf("generate cover letter: %w", err)
	}
	logger.Stage("Model call", started)

	// 4. Reuse or persist the job description
	jdID := req.SavedJobDescriptionID
	if saved == nil {
		jdID, err = p.jobs.Add(ctx, &domain.JobDescription{
			Title:     domain.CoverLetterJobTitle,
			Company:   domain.CoverLetterJobCompany,
			RawText:   jobText,
			CreatedAt: p.now(),
		})
		if err != nil {
			return nil, fmt.Errorf("save job description: %w", err)
		}
	}

	// 5. Persist the cover letter
	letterID, err := p.letters.Add(ctx, &domain.CoverLetter{
		JobDescriptionID: jdID,
		Content:          result.CoverLetter,
		KeyMatches:       result.KeyMatches,
		CreatedAt:        p.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("save cover letter: %w", err)
	}

	logger.Info("Cover letter %d saved for job description %d", letterID, jdID)
	return &domain.CoverLetterOutcome{
		Result:           result,
		JobDescriptionID: jdID,
		CoverLetterID:    letterID,
	}, nil
}

// validate checks the run gate: a key, a profile with experience, and
// enough job text. It returns the profile so callers read it only once.
func (p *Pipeline) validate(ctx context.Context, apiKey, jobText string) (*domain.Profile, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.NewValidationError("no API key configured; run 'resumebuddy settings api-key'")
	}

	profile, err := p.profiles.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError("no profile saved; run 'resumebuddy profile import'")
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !profile.HasExperience() {
		return nil, domain.NewValidationError("profile has no experience entries")
	}

	if !domain.JobTextLongEnough(jobText) {
		return nil, domain.NewValidationError(
			"job description must be longer than %d characters", domain.MinJobTextLength)
	}

	return profile, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
