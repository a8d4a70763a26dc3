package sqlite

import (
	"context"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// jobDescriptionStore implements driven.JobDescriptionStore.
type jobDescriptionStore struct {
	store *Store
}

var _ driven.JobDescriptionStore = (*jobDescriptionStore)(nil)

// Add stores a job description and returns its key.
func (s *jobDescriptionStore) Add(ctx context.Context, jd *domain.JobDescription) (int64, error) {
	if jd.CreatedAt.IsZero() {
		jd.CreatedAt = time.Now()
	}
	jd.CreatedAt = jd.CreatedAt.UTC()

	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO job_descriptions (title, company, raw_text, created_at)
		VALUES (?, ?, ?, ?)
	`, jd.Title, jd.Company, jd.RawText, jd.CreatedAt)
	if err != nil {
		return 0, storageErr("saving job description", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading job description id", err)
	}
	jd.ID = id
	return id, nil
}

// Get retrieves a job description by key.
func (s *jobDescriptionStore) Get(ctx context.Context, id int64) (*domain.JobDescription, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, company, raw_text, created_at
		FROM job_descriptions WHERE id = ?
	`, id)

	var jd domain.JobDescription
	if err := row.Scan(&jd.ID, &jd.Title, &jd.Company, &jd.RawText, &jd.CreatedAt); err != nil {
		return nil, storageErr("scanning job description", err)
	}
	return &jd, nil
}

// List returns all job descriptions, newest first.
func (s *jobDescriptionStore) List(ctx context.Context) ([]domain.JobDescription, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, company, raw_text, created_at
		FROM job_descriptions
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, storageErr("querying job descriptions", err)
	}
	defer rows.Close()

	var jds []domain.JobDescription //nolint:prealloc // size unknown from query
	for rows.Next() {
		var jd domain.JobDescription
		if err := rows.Scan(&jd.ID, &jd.Title, &jd.Company, &jd.RawText, &jd.CreatedAt); err != nil {
			return nil, storageErr("scanning job description", err)
		}
		jds = append(jds, jd)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating job descriptions", err)
	}

	return jds, nil
}
