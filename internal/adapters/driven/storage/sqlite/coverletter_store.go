package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// coverLetterStore implements driven.CoverLetterStore.
type coverLetterStore struct {
	store *Store
}

var _ driven.CoverLetterStore = (*coverLetterStore)(nil)

// Add stores a cover letter and returns its key.
func (s *coverLetterStore) Add(ctx context.Context, cl *domain.CoverLetter) (int64, error) {
	matchesJSON, err := json.Marshal(orEmpty(cl.KeyMatches))
	if err != nil {
		return 0, fmt.Errorf("marshalling key matches: %w", err)
	}

	if cl.CreatedAt.IsZero() {
		cl.CreatedAt = time.Now()
	}
	cl.CreatedAt = cl.CreatedAt.UTC()

	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO cover_letters (job_description_id, content, key_matches, created_at)
		VALUES (?, ?, ?, ?)
	`, cl.JobDescriptionID, cl.Content, string(matchesJSON), cl.CreatedAt)
	if err != nil {
		return 0, storageErr("saving cover letter", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading cover letter id", err)
	}
	cl.ID = id
	return id, nil
}

// Get retrieves a cover letter by key.
func (s *coverLetterStore) Get(ctx context.Context, id int64) (*domain.CoverLetter, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, job_description_id, content, key_matches, created_at
		FROM cover_letters WHERE id = ?
	`, id)
	return scanCoverLetter(row)
}

// List returns all cover letters, newest first.
func (s *coverLetterStore) List(ctx context.Context) ([]domain.CoverLetter, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, job_description_id, content, key_matches, created_at
		FROM cover_letters
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, storageErr("querying cover letters", err)
	}
	defer rows.Close()

	var letters []domain.CoverLetter //nolint:prealloc // size unknown from query
	for rows.Next() {
		cl, err := scanCoverLetter(rows)
		if err != nil {
			return nil, err
		}
		letters = append(letters, *cl)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating cover letters", err)
	}

	return letters, nil
}

func scanCoverLetter(row rowScanner) (*domain.CoverLetter, error) {
	var cl domain.CoverLetter
	var matchesJSON string
	if err := row.Scan(&cl.ID, &cl.JobDescriptionID, &cl.Content, &matchesJSON, &cl.CreatedAt); err != nil {
		return nil, storageErr("scanning cover letter", err)
	}
	if err := json.Unmarshal([]byte(matchesJSON), &cl.KeyMatches); err != nil {
		return nil, fmt.Errorf("%w: unmarshalling key matches: %w", domain.ErrStorage, err)
	}
	return &cl, nil
}
