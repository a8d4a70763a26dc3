package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// resumeStore implements driven.ResumeStore.
type resumeStore struct {
	store *Store
}

var _ driven.ResumeStore = (*resumeStore)(nil)

const resumeColumns = `id, job_description_id, optimized_summary, optimized_experience,
	optimized_skills, score, breakdown, suggestions, created_at`

// Add stores a resume and returns its key.
func (s *resumeStore) Add(ctx context.Context, r *domain.OptimizedResume) (int64, error) {
	experienceJSON, err := json.Marshal(orEmpty(r.OptimizedExperience))
	if err != nil {
		return 0, fmt.Errorf("marshalling experience: %w", err)
	}
	skillsJSON, err := json.Marshal(orEmpty(r.OptimizedSkills))
	if err != nil {
		return 0, fmt.Errorf("marshalling skills: %w", err)
	}
	breakdownJSON, err := json.Marshal(r.RubricBreakdown)
	if err != nil {
		return 0, fmt.Errorf("marshalling breakdown: %w", err)
	}
	suggestionsJSON, err := json.Marshal(orEmpty(r.Suggestions))
	if err != nil {
		return 0, fmt.Errorf("marshalling suggestions: %w", err)
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC()

	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO resumes (job_description_id, optimized_summary, optimized_experience,
			optimized_skills, score, breakdown, suggestions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.JobDescriptionID, r.OptimizedSummary, string(experienceJSON), string(skillsJSON),
		r.Score, string(breakdownJSON), string(suggestionsJSON), r.CreatedAt)
	if err != nil {
		return 0, storageErr("saving resume", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading resume id", err)
	}
	r.ID = id
	return id, nil
}

// Get retrieves a resume by key.
func (s *resumeStore) Get(ctx context.Context, id int64) (*domain.OptimizedResume, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+resumeColumns+" FROM resumes WHERE id = ?", id)
	return scanResume(row)
}

// List returns all resumes, newest first.
func (s *resumeStore) List(ctx context.Context) ([]domain.OptimizedResume, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+resumeColumns+" FROM resumes ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, storageErr("querying resumes", err)
	}
	defer rows.Close()

	var resumes []domain.OptimizedResume //nolint:prealloc // size unknown from query
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating resumes", err)
	}

	return resumes, nil
}

// Delete removes a resume. The job description row is left in place.
func (s *resumeStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM resumes WHERE id = ?", id); err != nil {
		return storageErr("deleting resume", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (*domain.OptimizedResume, error) {
	var r domain.OptimizedResume
	var experienceJSON, skillsJSON, breakdownJSON, suggestionsJSON string
	if err := row.Scan(&r.ID, &r.JobDescriptionID, &r.OptimizedSummary, &experienceJSON,
		&skillsJSON, &r.Score, &breakdownJSON, &suggestionsJSON, &r.CreatedAt); err != nil {
		return nil, storageErr("scanning resume", err)
	}

	if err := unmarshalColumns(map[string]columnTarget{
		"optimized_experience": {experienceJSON, &r.OptimizedExperience},
		"optimized_skills":     {skillsJSON, &r.OptimizedSkills},
		"breakdown":            {breakdownJSON, &r.RubricBreakdown},
		"suggestions":          {suggestionsJSON, &r.Suggestions},
	}); err != nil {
		return nil, err
	}

	return &r, nil
}

// columnTarget pairs a JSON column value with its destination.
type columnTarget struct {
	raw string
	dst any
}

func unmarshalColumns(cols map[string]columnTarget) error {
	for name, col := range cols {
		if err := json.Unmarshal([]byte(col.raw), col.dst); err != nil {
			return fmt.Errorf("%w: unmarshalling %s: %w", domain.ErrStorage, name, err)
		}
	}
	return nil
}

// orEmpty keeps nil slices from being stored as JSON null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
