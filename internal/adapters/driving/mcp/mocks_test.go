package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driving"
)

// mockPipeline implements driving.Pipeline for testing.
type mockPipeline struct {
	optimizeOutcome    *domain.OptimizeOutcome
	coverLetterOutcome *domain.CoverLetterOutcome
	err                error

	lastOptimize    domain.OptimizeRequest
	lastCoverLetter domain.CoverLetterRequest
}

func (m *mockPipeline) Optimize(_ context.Context, req domain.OptimizeRequest) (*domain.OptimizeOutcome, error) {
	m.lastOptimize = req
	if m.err != nil {
		return nil, m.err
	}
	return m.optimizeOutcome, nil
}

func (m *mockPipeline) GenerateCoverLetter(
	_ context.Context,
	req domain.CoverLetterRequest,
) (*domain.CoverLetterOutcome, error) {
	m.lastCoverLetter = req
	if m.err != nil {
		return nil, m.err
	}
	return m.coverLetterOutcome, nil
}

func (m *mockPipeline) Busy(domain.Operation) bool { return false }

// mockSettings implements driving.SettingsService for testing.
type mockSettings struct {
	apiKey string
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	s.Gemini.APIKey = m.apiKey
	return &s, nil
}

func (m *mockSettings) SetAPIKey(key string) error {
	m.apiKey = key
	return nil
}

func (m *mockSettings) ClearAPIKey() error {
	m.apiKey = ""
	return nil
}

func (m *mockSettings) APIKey() string                  { return m.apiKey }
func (m *mockSettings) SetTheme(domain.Theme) error     { return nil }
func (m *mockSettings) SetModel(string) error           { return nil }
func (m *mockSettings) SetTimeout(time.Duration) error  { return nil }
func (m *mockSettings) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

// mockProfile implements driving.ProfileService for testing.
type mockProfile struct {
	profile *domain.Profile
	err     error
}

func (m *mockProfile) Get(context.Context) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

func (m *mockProfile) Save(context.Context, *domain.Profile) error { return nil }

func (m *mockProfile) AddExperience(_ context.Context, exp domain.Experience) (*domain.Experience, error) {
	return &exp, nil
}

func (m *mockProfile) RemoveExperience(context.Context, string) error { return nil }

func (m *mockProfile) AddProject(_ context.Context, p domain.Project) (*domain.Project, error) {
	return &p, nil
}

func (m *mockProfile) RemoveProject(context.Context, string) error { return nil }

func (m *mockProfile) AddEducation(_ context.Context, e domain.Education) (*domain.Education, error) {
	return &e, nil
}

func (m *mockProfile) RemoveEducation(context.Context, string) error           { return nil }
func (m *mockProfile) AddSkill(context.Context, string) error                  { return nil }
func (m *mockProfile) RemoveSkill(context.Context, string) error               { return nil }
func (m *mockProfile) Import(context.Context, string) (*domain.Profile, error) { return m.profile, nil }
func (m *mockProfile) Export(context.Context, string) error                    { return nil }

func (m *mockProfile) Watch(context.Context, string, func(*domain.Profile, error)) error {
	return nil
}

// mockHistory implements driving.HistoryService for testing.
type mockHistory struct {
	entries []domain.HistoryEntry
	jobs    []domain.JobDescription
	err     error
}

func (m *mockHistory) ListResumes(context.Context) ([]domain.HistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockHistory) GetResume(_ context.Context, id int64) (*domain.HistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.entries {
		if m.entries[i].ID == id {
			return &m.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistory) DeleteResume(context.Context, int64) error { return nil }

func (m *mockHistory) ListJobDescriptions(context.Context) ([]domain.JobDescription, error) {
	return m.jobs, nil
}

func (m *mockHistory) GetJobDescription(_ context.Context, id int64) (*domain.JobDescription, error) {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			return &m.jobs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistory) ListCoverLetters(context.Context) ([]domain.CoverLetter, error) {
	return nil, nil
}

func (m *mockHistory) GetCoverLetter(context.Context, int64) (*domain.CoverLetter, error) {
	return nil, domain.ErrNotFound
}

// Ensure mocks implement the interfaces.
var (
	_ driving.Pipeline        = (*mockPipeline)(nil)
	_ driving.SettingsService = (*mockSettings)(nil)
	_ driving.ProfileService  = (*mockProfile)(nil)
	_ driving.HistoryService  = (*mockHistory)(nil)
)

const testJobText = "Senior Go engineer to build data pipelines and CLI tooling for a platform team."
