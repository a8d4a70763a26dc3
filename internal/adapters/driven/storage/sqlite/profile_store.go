package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// profileStore implements driven.ProfileStore.
type profileStore struct {
	store *Store
}

var _ driven.ProfileStore = (*profileStore)(nil)

// Get retrieves the singleton profile.
func (s *profileStore) Get(ctx context.Context) (*domain.Profile, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT data, updated_at FROM master_profile WHERE id = ?", domain.ProfileID)

	var data string
	var updatedAt time.Time
	if err := row.Scan(&data, &updatedAt); err != nil {
		return nil, storageErr("scanning profile", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("%w: unmarshalling profile: %w", domain.ErrStorage, err)
	}
	profile.ID = domain.ProfileID
	profile.UpdatedAt = updatedAt

	return &profile, nil
}

// Put overwrites the singleton profile.
func (s *profileStore) Put(ctx context.Context, profile domain.Profile) error {
	profile.ID = domain.ProfileID
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now()
	}
	profile.UpdatedAt = profile.UpdatedAt.UTC()

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshalling profile: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO master_profile (id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, domain.ProfileID, string(data), profile.UpdatedAt)
	if err != nil {
		return storageErr("saving profile", err)
	}
	return nil
}
